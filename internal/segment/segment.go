// Package segment splits runs of Han characters into word tokens.
//
// Every Segmenter honours one invariant: joining its output reproduces the
// input exactly. Single-rune tokens are valid output; dropping them is the
// filter's job.
package segment

import "strings"

// Segmenter splits text into order-preserving, non-overlapping tokens.
type Segmenter interface {
	Segment(text string) []string
}

// Reconstitutes reports whether tokens join back into text.
func Reconstitutes(text string, tokens []string) bool {
	return strings.Join(tokens, "") == text
}
