package freq

import "sort"

// DefaultTopN bounds the series handed to a chart.
const DefaultTopN = 20

// Entry is one ranked token.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Series is a ranked, truncated list of entries.
type Series []Entry

// Rank sorts t by descending count, breaking ties by first-seen order,
// and keeps at most topN entries. topN <= 0 keeps everything.
func Rank(t *Table, topN int) Series {
	if t == nil || t.Empty() {
		return Series{}
	}

	s := make(Series, len(t.order))
	for i, tok := range t.order {
		s[i] = Entry{Token: tok, Count: t.counts[tok]}
	}
	// stable: equal counts keep first-seen order
	sort.SliceStable(s, func(i, j int) bool { return s[i].Count > s[j].Count })

	if topN > 0 && len(s) > topN {
		s = s[:topN]
	}
	return s
}

// Labels returns the tokens of s in rank order.
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Token
	}
	return out
}

// Values returns the counts of s in rank order.
func (s Series) Values() []int {
	out := make([]int, len(s))
	for i, e := range s {
		out[i] = e.Count
	}
	return out
}

// Max returns the largest count, 0 for an empty series.
func (s Series) Max() int {
	m := 0
	for _, e := range s {
		if e.Count > m {
			m = e.Count
		}
	}
	return m
}

// Total returns the sum of counts.
func (s Series) Total() int {
	n := 0
	for _, e := range s {
		n += e.Count
	}
	return n
}
