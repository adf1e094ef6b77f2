package cleaner

import (
	"strings"

	"golang.org/x/net/html"
)

var skipTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
	"iframe":   {},
	"object":   {},
	"svg":      {},
}

// stripTokens walks raw with the low-level tokenizer and keeps text tokens
// outside hidden elements. It tolerates any input.
func stripTokens(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	depth := 0 // nesting inside skipTags

	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			if _, ok := skipTags[string(name)]; ok {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if _, ok := skipTags[string(name)]; ok && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}
