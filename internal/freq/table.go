// Package freq counts tokens and ranks them by frequency.
package freq

import "wordfreq-go/internal/errs"

// Table maps distinct tokens to their occurrence counts and remembers the
// order in which tokens were first seen.
type Table struct {
	counts map[string]int
	order  []string
}

// Aggregate counts tokens and drops entries seen fewer than minFreq times.
// An empty result is valid. minFreq < 1 is rejected.
func Aggregate(tokens []string, minFreq int) (*Table, error) {
	if minFreq < 1 {
		return nil, errs.Invalid("min_freq must be >= 1, got %d", minFreq)
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	kept := order[:0]
	for _, tok := range order {
		if counts[tok] < minFreq {
			delete(counts, tok)
			continue
		}
		kept = append(kept, tok)
	}
	return &Table{counts: counts, order: kept}, nil
}

// Count returns the count of token, 0 if absent.
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.order)
}

// Empty reports whether no token reached the threshold.
func (t *Table) Empty() bool {
	return len(t.order) == 0
}

// Counts returns a copy of the token counts.
func (t *Table) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Order returns the tokens in first-seen order.
func (t *Table) Order() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
