package segment

import (
	"fmt"
	"log/slog"

	"github.com/go-ego/gse"
)

// GSESegmenter delegates to the gse library and its embedded Chinese
// dictionary. Output that breaks reconstitution is replaced by the
// fallback segmenter's output.
type GSESegmenter struct {
	seg      gse.Segmenter
	fallback Segmenter
	logger   *slog.Logger
}

// NewGSESegmenter loads the embedded "zh" dictionary.
func NewGSESegmenter(fallback Segmenter, logger *slog.Logger) (*GSESegmenter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &GSESegmenter{fallback: fallback, logger: logger}
	if err := s.seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("load gse dictionary: %w", err)
	}
	return s, nil
}

// Segment implements Segmenter.
func (s *GSESegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return s.reconcile(text, s.seg.Slice(text))
}

func (s *GSESegmenter) reconcile(text string, tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	if Reconstitutes(text, out) {
		return out
	}
	s.logger.Warn("gse output does not reconstitute input, using fallback",
		"runes", len([]rune(text)), "tokens", len(tokens))
	if s.fallback != nil {
		return s.fallback.Segment(text)
	}
	return splitRunes(text)
}

func splitRunes(text string) []string {
	tokens := make([]string, 0, len(text)/3)
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens
}
