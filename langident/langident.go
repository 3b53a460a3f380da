// Package langident guesses the language of a text by its stop words.
package langident

import (
	"bufio"
	"embed"
	"path"
	"strings"
	"unicode"

	"github.com/revelaction/segtree/engine"
)

// Unknown is returned when a text has no evidence for any language.
const Unknown = "none"

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

// languages in tie breaking order
var languages = []string{"es", "en", "ca", "fr", "it", "pt", "de"}

type Identifier struct {
	stopwords map[string]map[string]struct{}
}

var _ engine.LanguageIdentifier = (*Identifier)(nil)

// New loads the embedded stop word lists.
func New() (*Identifier, error) {
	id := &Identifier{stopwords: map[string]map[string]struct{}{}}

	for _, lang := range languages {
		f, err := stopwordFiles.Open(path.Join("stopwords", lang+".txt"))
		if err != nil {
			return nil, err
		}

		words := map[string]struct{}{}
		scan := bufio.NewScanner(f)
		for scan.Scan() {
			if w := strings.TrimSpace(scan.Text()); w != "" {
				words[w] = struct{}{}
			}
		}

		f.Close()
		if err := scan.Err(); err != nil {
			return nil, err
		}

		id.stopwords[lang] = words
	}

	return id, nil
}

// Identify returns the code of the language with most stop words in text,
// or Unknown.
func (id *Identifier) Identify(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	best, bestScore := Unknown, 0
	for _, lang := range languages {
		score := 0
		for _, w := range words {
			if _, ok := id.stopwords[lang][w]; ok {
				score++
			}
		}

		if score > bestScore {
			best, bestScore = lang, score
		}
	}

	return best
}
