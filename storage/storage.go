package storage

import (
	sent "github.com/revelaction/segtree/sentence"
)

// Entry is one reading of a word form in the dictionary.
type Entry struct {
	Form  string
	Lemma string
	Tag   string
}

// SenseEntry is one sense of a lemma with a given coarse part of speech.
type SenseEntry struct {
	Lemma string
	Pos   string
	Sense string
	Score float64
}

// DictReader defines read operations for dictionary storage
type DictReader interface {
	// Lookup returns the analyses of a lowercased word form, in dictionary
	// order. Unknown forms return no analyses and no error.
	Lookup(form string) ([]sent.Analysis, error)

	// Senses returns the senses of a lemma for a coarse part of speech
	// (the first letter of a tag, lowercased).
	Senses(lemma, pos string) ([]sent.Sense, error)

	// Multiwords returns the dictionary forms made of several words joined
	// by "_".
	Multiwords() ([]string, error)
}

// DictWriter defines write operations for dictionary storage
type DictWriter interface {
	// WriteEntries persists dictionary readings
	WriteEntries(entries []Entry) error

	// WriteSenses persists lemma senses
	WriteSenses(senses []SenseEntry) error
}

// DictRepository combines read and write operations
type DictRepository interface {
	DictReader
	DictWriter
}

// IsMultiword reports whether a dictionary form spans several words.
func IsMultiword(form string) bool {
	for i := 0; i < len(form); i++ {
		if form[i] == '_' {
			return i > 0 && i < len(form)-1
		}
	}
	return false
}
