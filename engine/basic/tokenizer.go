package basic

import (
	"regexp"

	sent "github.com/revelaction/segtree/sentence"
	"golang.org/x/text/unicode/norm"
)

// Token patterns, tried left to right: dates, numbers (with an optional
// percent sign), ellipsis, words with inner hyphens or apostrophes and any
// other single non space character.
var tokenRe = regexp.MustCompile(
	`\d{1,2}/\d{1,2}/\d{2,4}` +
		`|\d+(?:[.,]\d+)*%?` +
		`|\.\.\.` +
		`|[\p{L}\p{M}\p{N}]+(?:[-'’][\p{L}\p{M}\p{N}]+)*` +
		`|\S`)

// Tokenize splits a text line into words. The text is normalized to NFC
// first, so composed and decomposed accents give the same forms.
func (e *Engine) Tokenize(text string) ([]sent.Word, error) {
	text = norm.NFC.String(text)

	forms := tokenRe.FindAllString(text, -1)
	words := make([]sent.Word, 0, len(forms))
	for _, f := range forms {
		words = append(words, sent.Word{Form: f})
	}

	return words, nil
}
