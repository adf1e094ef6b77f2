package segment

import "math"

// DictSegmenter picks the most probable split of a rune run given word
// frequencies from a Dictionary. Runes no dictionary word covers become
// single-rune tokens.
type DictSegmenter struct {
	dict *Dictionary
}

// NewDictSegmenter returns a segmenter backed by dict.
func NewDictSegmenter(dict *Dictionary) *DictSegmenter {
	if dict == nil {
		dict = NewDictionary()
	}
	return &DictSegmenter{dict: dict}
}

// Segment implements Segmenter.
func (s *DictSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	route := s.route(runes, s.dag(runes))

	tokens := make([]string, 0, len(runes))
	for i := 0; i < len(runes); {
		end := route[i].end
		tokens = append(tokens, string(runes[i:end+1]))
		i = end + 1
	}
	return tokens
}

// dag lists, for every start index, the end indexes (inclusive) of the
// dictionary words beginning there. Index k itself is always present.
func (s *DictSegmenter) dag(runes []rune) [][]int {
	n := len(runes)
	dag := make([][]int, n)
	for k := 0; k < n; k++ {
		ends := []int{k}
		for l := 2; l <= s.dict.maxLen && k+l <= n; l++ {
			if s.dict.freq[string(runes[k:k+l])] > 0 {
				ends = append(ends, k+l-1)
			}
		}
		dag[k] = ends
	}
	return dag
}

type step struct {
	score float64
	end   int
}

// route walks right to left keeping the best log-probability suffix.
// Equal scores prefer the longer word.
func (s *DictSegmenter) route(runes []rune, dag [][]int) []step {
	n := len(runes)
	logTotal := math.Log(float64(max(s.dict.total, 1)))
	route := make([]step, n+1)

	for k := n - 1; k >= 0; k-- {
		best := step{score: math.Inf(-1), end: k}
		for _, x := range dag[k] {
			f := s.dict.freq[string(runes[k:x+1])]
			score := math.Log(float64(max(f, 1))) - logTotal + route[x+1].score
			if score > best.score || (score == best.score && x > best.end) {
				best = step{score: score, end: x}
			}
		}
		route[k] = best
	}
	return route
}
