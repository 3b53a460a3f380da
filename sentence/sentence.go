package sentence

import (
	"strconv"
	"strings"
)

// Sentence is an analysed sentence: its words plus the constituency and
// dependency trees built over them.
type Sentence struct {
	Words []Word `json:"words"`

	ParseTree *ParseNode `json:"parse_tree,omitempty"`
	DepTree   *DepNode   `json:"dep_tree,omitempty"`
}

// Word represents a word of the sentence, with the lemma and tag chosen by
// the tagger and the candidate analyses found by the morphological analyzer.
type Word struct {
	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The part of speech tag
	Tag string `json:"tag"`

	Senses []Sense `json:"senses,omitempty"`

	// Candidate analyses, as produced by the morphological analyzer.
	Analyses []Analysis `json:"analyses,omitempty"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Analysis is one lemma/tag reading of a word.
type Analysis struct {
	Lemma string  `json:"lemma"`
	Tag   string  `json:"tag"`
	Prob  float64 `json:"prob"`
}

// Sense is a word sense identifier with its score.
type Sense struct {
	Id    string  `json:"id"`
	Score float64 `json:"score"`
}

// SensesString returns the senses as id:score pairs joined by "/". It is
// empty for words without senses.
func (w Word) SensesString() string {
	if len(w.Senses) == 0 {
		return ""
	}

	parts := make([]string, 0, len(w.Senses))
	for _, s := range w.Senses {
		parts = append(parts, s.Id+":"+strconv.FormatFloat(s.Score, 'f', -1, 64))
	}

	return strings.Join(parts, "/")
}

// Lemmas returns the lemmas of the sentence words, in order.
func (s *Sentence) Lemmas() []string {
	lemmas := make([]string, 0, len(s.Words))
	for _, w := range s.Words {
		lemmas = append(lemmas, w.Lemma)
	}

	return lemmas
}

// Text returns the word forms of the sentence joined by a space.
func (s *Sentence) Text() string {
	forms := make([]string, 0, len(s.Words))
	for _, w := range s.Words {
		forms = append(forms, w.Form)
	}

	return strings.Join(forms, " ")
}

// Reindex sets the Index of every word to its position.
func (s *Sentence) Reindex() {
	for i := range s.Words {
		s.Words[i].Index = i
	}
}
