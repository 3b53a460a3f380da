package basic

import (
	"github.com/revelaction/segtree/engine"
	sent "github.com/revelaction/segtree/sentence"
)

// Sentences longer than this are cut even without an end marker.
const maxSentenceWords = 500

var sentenceEnders = map[string]bool{
	".":   true,
	"...": true,
	"!":   true,
	"?":   true,
}

// closers stay in the sentence they follow.
var closers = map[string]bool{
	`"`: true,
	"'": true,
	"»": true,
	"”": true,
	"’": true,
	")": true,
	"]": true,
}

type session struct {
	buf    []sent.Word
	ended  bool
	closed bool
}

func (e *Engine) OpenSession() (engine.Session, error) {
	return &session{}, nil
}

// Split buffers words until a sentence end marker. Closing quotes and
// brackets right after a marker, and repeated markers, belong to the ending
// sentence.
func (s *session) Split(words []sent.Word, flush bool) ([]*sent.Sentence, error) {
	if s.closed {
		return nil, engine.ErrSessionClosed
	}

	var ls []*sent.Sentence
	for _, w := range words {
		if s.ended && !closers[w.Form] && !sentenceEnders[w.Form] {
			ls = append(ls, s.cut())
		}

		s.buf = append(s.buf, w)

		if sentenceEnders[w.Form] {
			s.ended = true
		}

		if len(s.buf) >= maxSentenceWords {
			ls = append(ls, s.cut())
		}
	}

	if s.ended || (flush && len(s.buf) > 0) {
		ls = append(ls, s.cut())
	}

	return ls, nil
}

func (s *session) cut() *sent.Sentence {
	st := &sent.Sentence{Words: s.buf}
	st.Reindex()

	s.buf = nil
	s.ended = false
	return st
}

func (s *session) Close() error {
	s.closed = true
	s.buf = nil
	return nil
}
