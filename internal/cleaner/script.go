package cleaner

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive rune interval.
type Range struct {
	Lo, Hi rune
}

// Script is the set of rune ranges that count as target text.
type Script []Range

// Han is the basic CJK Unified Ideographs block U+4E00..U+9FA5.
var Han = Script{{Lo: 0x4E00, Hi: 0x9FA5}}

// Contains reports whether r falls inside any range of s.
func (s Script) Contains(r rune) bool {
	for _, rg := range s {
		if r >= rg.Lo && r <= rg.Hi {
			return true
		}
	}
	return false
}

// Keep returns the runes of text that belong to s, in order.
func (s Script) Keep(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if s.Contains(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseRange parses "4e00-9fa5" (hex, optional 0x / U+ prefixes) into a Range.
func ParseRange(spec string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: want LO-HI", spec)
	}
	l, err := parseCodepoint(lo)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", spec, err)
	}
	h, err := parseCodepoint(hi)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", spec, err)
	}
	if l > h {
		return Range{}, fmt.Errorf("range %q: low bound above high bound", spec)
	}
	return Range{Lo: l, Hi: h}, nil
}

// ParseScript parses a list of range specs.
func ParseScript(specs []string) (Script, error) {
	s := make(Script, 0, len(specs))
	for _, spec := range specs {
		rg, err := ParseRange(spec)
		if err != nil {
			return nil, err
		}
		s = append(s, rg)
	}
	return s, nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %X out of range", n)
	}
	return rune(n), nil
}
