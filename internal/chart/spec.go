package chart

import (
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/freq"
)

// SeriesName labels the value axis of every chart.
const SeriesName = "词频"

// Spec is everything a renderer needs to draw one chart.
type Spec struct {
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	SeriesName string   `json:"series_name"`
	Labels     []string `json:"labels"`
	Values     []int    `json:"values"`
	// Max is set only for kinds that scale a radial axis.
	Max int `json:"max,omitempty"`
}

// Build turns a ranked series into a chart spec for kind.
func Build(kind Kind, series freq.Series) (Spec, error) {
	if !kind.Valid() {
		return Spec{}, errs.Invalid("unsupported chart kind %d", int(kind))
	}
	spec := Spec{
		Kind:       kind,
		Title:      kind.Title(),
		SeriesName: SeriesName,
		Labels:     series.Labels(),
		Values:     series.Values(),
	}
	if kind.NeedsMax() {
		spec.Max = series.Max()
	}
	return spec, nil
}

// Empty reports whether there is nothing to draw.
func (s Spec) Empty() bool {
	return len(s.Labels) == 0
}
