package filter

// StopwordSet is an immutable set of tokens excluded from counting.
// The zero value is an empty set.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet copies words into a new set.
func NewStopwordSet(words []string) StopwordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return StopwordSet{words: m}
}

// Contains reports exact membership.
func (s StopwordSet) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of stopwords.
func (s StopwordSet) Len() int {
	return len(s.words)
}

// Words returns the stopwords in no particular order.
func (s StopwordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// DefaultStopwords returns the built-in Chinese stopword list.
// No globals: callers build their own set or start from this one.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet([]string{
		"的", "了", "是", "在", "和", "有", "我", "他", "它", "这", "不", "人", "也", "都",
		"一个", "我们", "对", "为", "着", "要", "就",
	})
}
