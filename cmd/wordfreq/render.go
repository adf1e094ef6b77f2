package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"wordfreq-go/internal/chart"
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/freq"
	"wordfreq-go/internal/pipeline"
)

const previewRunes = 200

type jsonResult struct {
	URL   string      `json:"url"`
	ID    string      `json:"id,omitempty"`
	Text  string      `json:"text,omitempty"`
	Top   freq.Series `json:"top,omitempty"`
	Chart *chart.Spec `json:"chart,omitempty"`
	Error string      `json:"error,omitempty"`
}

func writeJSON(w io.Writer, outcomes []pipeline.Outcome) error {
	results := make([]jsonResult, len(outcomes))
	for i, o := range outcomes {
		r := jsonResult{URL: o.Request.URL}
		if o.Err != nil {
			r.Error = describe(o.Err)
		} else {
			r.ID = o.Result.ID
			r.Text = o.Result.Text
			r.Top = o.Result.Series
			spec := o.Result.Chart
			r.Chart = &spec
		}
		results[i] = r
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeText(w io.Writer, outcomes []pipeline.Outcome) {
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s\n", o.Request.URL)
		if o.Err != nil {
			fmt.Fprintf(w, "error: %s\n", describe(o.Err))
			continue
		}
		res := o.Result
		fmt.Fprintf(w, "text: %s\n", preview(res.Text, previewRunes))
		if len(res.Series) == 0 {
			fmt.Fprintf(w, "no words at or above min frequency %d\n", o.Request.MinFreq)
			continue
		}
		fmt.Fprintf(w, "top words (%s):\n", res.Chart.Title)
		for _, e := range res.Series {
			fmt.Fprintf(w, "  %s: %d\n", e.Token, e.Count)
		}
	}
}

// describe maps the error taxonomy to user-facing messages.
func describe(err error) string {
	var fe *errs.FetchError
	switch {
	case errors.As(err, &fe):
		return fmt.Sprintf("could not fetch URL content: %v", fe.Cause)
	case errors.Is(err, errs.ErrEmptyContent):
		return "fetched page has no Chinese text, check that the URL is valid"
	case errors.Is(err, errs.ErrInvalidArgument):
		return err.Error()
	default:
		return fmt.Sprintf("analysis failed: %v", err)
	}
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
