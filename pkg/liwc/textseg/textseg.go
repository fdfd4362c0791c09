package textseg

import (
	"regexp"
	"strings"
)

var (
	separators   = regexp.MustCompile(`\W+\s*`)
	sentenceEnds = regexp.MustCompile(`\s*[\.!\?]+\s+`)
	trailingEnds = regexp.MustCompile(`\s*[\.!\?]+\s*$`)
)

// Tokenize splits text into word tokens, preserving case and order.
// Every maximal run of non-word characters acts as a single separator,
// so contractions split at the apostrophe ("don't" becomes "don", "t")
// and "3.14" becomes "3", "14". Text without any word character yields
// an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(separators.ReplaceAllString(text, " "))
}

// SplitSentences splits text into sentence spans on runs of terminal
// punctuation (".", "!", "?"). The terminal marks and separating
// whitespace are not part of the returned spans, a trailing mark opens
// no extra span, and empty spans are dropped.
func SplitSentences(text string) []string {
	stripped := trailingEnds.ReplaceAllString(text, "")
	parts := sentenceEnds.Split(stripped, -1)
	spans := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		spans = append(spans, p)
	}
	return spans
}
