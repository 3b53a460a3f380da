package basic

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
)

// Tag given to words without any analysis.
const tagUnknown = "X"

// Tag selects the lemma and tag of every word among its analyses: the most
// probable one, except that after a determiner a noun reading is preferred.
func (e *Engine) Tag(ls []*sent.Sentence) error {
	for _, s := range ls {
		prev := ""
		for i := range s.Words {
			w := &s.Words[i]

			a, ok := choose(w.Analyses, prev)
			if !ok {
				a = sent.Analysis{Lemma: strings.ToLower(w.Form), Tag: tagUnknown}
			}

			w.Lemma, w.Tag = a.Lemma, a.Tag
			prev = w.Tag
		}
	}

	return nil
}

func choose(as []sent.Analysis, prevTag string) (sent.Analysis, bool) {
	if len(as) == 0 {
		return sent.Analysis{}, false
	}

	best := 0
	for i, a := range as {
		if a.Prob > as[best].Prob {
			best = i
		}
	}

	if strings.HasPrefix(prevTag, "D") {
		for _, a := range as {
			if strings.HasPrefix(a.Tag, "N") {
				return a, true
			}
		}
	}

	return as[best], true
}

// senseClasses are the coarse parts of speech with senses.
var senseClasses = map[string]bool{"n": true, "v": true, "a": true, "r": true}

// AnnotateSenses attaches the dictionary senses of the chosen lemma and
// coarse part of speech to every word.
func (e *Engine) AnnotateSenses(ls []*sent.Sentence) error {
	for _, s := range ls {
		for i := range s.Words {
			w := &s.Words[i]
			w.Senses = nil

			pos := coarse(w.Tag)
			if !senseClasses[pos] {
				continue
			}

			senses, err := e.dict.Senses(w.Lemma, pos)
			if err != nil {
				return fmt.Errorf("senses of %q: %w", w.Lemma, err)
			}
			w.Senses = senses
		}
	}

	return nil
}

// coarse returns the lowercased first letter of a tag.
func coarse(tag string) string {
	if tag == "" {
		return ""
	}
	return strings.ToLower(tag[:1])
}
