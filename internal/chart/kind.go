// Package chart is the boundary to chart renderers: a closed set of chart
// kinds and one uniform labelled series shape.
package chart

import (
	"strings"

	"wordfreq-go/internal/errs"
)

// Kind selects a chart.
type Kind int

const (
	WordCloud Kind = iota
	Bar
	Pie
	Line
	Scatter
	Radar
	Funnel
)

var kindNames = [...]string{
	WordCloud: "wordcloud",
	Bar:       "bar",
	Pie:       "pie",
	Line:      "line",
	Scatter:   "scatter",
	Radar:     "radar",
	Funnel:    "funnel",
}

// display titles, as shown above a rendered chart
var kindTitles = [...]string{
	WordCloud: "词云图",
	Bar:       "柱状图",
	Pie:       "饼图",
	Line:      "折线图",
	Scatter:   "散点图",
	Radar:     "雷达图",
	Funnel:    "漏斗图",
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{WordCloud, Bar, Pie, Line, Scatter, Radar, Funnel}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= WordCloud && k <= Funnel
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Title is the human-readable chart title.
func (k Kind) Title() string {
	if !k.Valid() {
		return ""
	}
	return kindTitles[k]
}

// NeedsMax reports whether renderers need a max-value scalar for a radial axis.
func (k Kind) NeedsMax() bool {
	return k == Radar
}

// ParseKind accepts the English name or the Chinese title of a kind.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) || s == kindTitles[k] {
			return k, nil
		}
	}
	return 0, errs.Invalid("unsupported chart kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errs.Invalid("unsupported chart kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

