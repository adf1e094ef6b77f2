// Package filter drops stopwords and short tokens.
package filter

import "unicode/utf8"

// DefaultMinRunes is the shortest token, in runes, that survives filtering.
const DefaultMinRunes = 2

// Filter is a pure function of its token input, a StopwordSet and a
// minimum token length.
type Filter struct {
	stops    StopwordSet
	minRunes int
}

// New returns a Filter dropping stops and tokens shorter than minRunes.
// minRunes < 1 is treated as 1.
func New(stops StopwordSet, minRunes int) *Filter {
	if minRunes < 1 {
		minRunes = 1
	}
	return &Filter{stops: stops, minRunes: minRunes}
}

// Apply returns the surviving tokens in their original order.
// The input slice is not modified.
func (f *Filter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f.Keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Keep reports whether a single token survives.
func (f *Filter) Keep(token string) bool {
	if utf8.RuneCountInString(token) < f.minRunes {
		return false
	}
	return !f.stops.Contains(token)
}
