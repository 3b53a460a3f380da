// Package engine defines the capabilities the analysis pipeline needs from a
// linguistic engine, and the configuration record engines are built from.
package engine

import (
	"errors"

	sent "github.com/revelaction/segtree/sentence"
)

// ErrSessionClosed is returned when a closed splitter session is used.
var ErrSessionClosed = errors.New("splitter session closed")

// Engine is a linguistic analyzer. Every method but OpenSession is a batch
// transform over sentences; the stages complete the sentences in place.
type Engine interface {
	// Tokenize splits a raw text line into words.
	Tokenize(text string) ([]sent.Word, error)

	// OpenSession returns a new sentence splitter session.
	OpenSession() (Session, error)

	AnalyzeMorphology(ls []*sent.Sentence) error
	Tag(ls []*sent.Sentence) error
	AnnotateSenses(ls []*sent.Sentence) error
	ParseConstituency(ls []*sent.Sentence) error
	ParseDependency(ls []*sent.Sentence) error
}

// Session tracks sentence boundaries across successive word batches.
type Session interface {
	// Split accumulates words and returns the sentences completed so far. The
	// result may be empty if no sentence end was found yet. With flush, any
	// buffered words are returned as a last sentence.
	Split(words []sent.Word, flush bool) ([]*sent.Sentence, error)

	Close() error
}

// LanguageIdentifier guesses the language of a text.
type LanguageIdentifier interface {
	Identify(text string) string
}
