// Package cleaner turns raw markup into a string of target-script runes.
package cleaner

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nodes whose text is never shown to a reader
const hiddenNodes = "script, style, noscript, template, iframe, object, svg"

// Cleaner strips markup and keeps only the configured script.
type Cleaner struct {
	script Script
	logger *slog.Logger
}

// New returns a Cleaner for script. An empty script falls back to Han.
func New(script Script, logger *slog.Logger) *Cleaner {
	if len(script) == 0 {
		script = Han
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := make(Script, len(script))
	copy(s, script)
	return &Cleaner{script: s, logger: logger}
}

// Clean returns the target-script runes of the visible text in raw.
// It never fails; the result may be empty.
func (c *Cleaner) Clean(raw string) string {
	return c.script.Keep(c.ExtractText(raw))
}

// ExtractText returns the visible text of raw markup.
func (c *Cleaner) ExtractText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		c.logger.Debug("goquery parse failed, stripping tokens", "err", err)
		return stripTokens(raw)
	}

	// Remove noisy nodes
	doc.Find(hiddenNodes).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})
	return doc.Text()
}
