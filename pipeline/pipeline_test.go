package pipeline

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/revelaction/segtree/engine"
	sent "github.com/revelaction/segtree/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine splits on spaces, ends sentences at "." and records every
// call it receives.
type stubEngine struct {
	calls    []string
	failAt   string
	opened   int
	closed   int
	openErr  error
	sessions []*stubSession
}

type stubSession struct {
	eng    *stubEngine
	buf    []sent.Word
	closed bool
}

var errStage = errors.New("stage failed")

func (e *stubEngine) record(name string, ls []*sent.Sentence) error {
	e.calls = append(e.calls, name)
	if e.failAt == name {
		return errStage
	}
	return nil
}

func (e *stubEngine) Tokenize(text string) ([]sent.Word, error) {
	e.calls = append(e.calls, "tokenize")
	var words []sent.Word
	for _, f := range strings.Fields(text) {
		words = append(words, sent.Word{Form: f})
	}
	return words, nil
}

func (e *stubEngine) OpenSession() (engine.Session, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	e.opened++
	s := &stubSession{eng: e}
	e.sessions = append(e.sessions, s)
	return s, nil
}

func (s *stubSession) Split(words []sent.Word, flush bool) ([]*sent.Sentence, error) {
	if s.closed {
		return nil, engine.ErrSessionClosed
	}
	if flush {
		s.eng.calls = append(s.eng.calls, "flush")
	} else {
		s.eng.calls = append(s.eng.calls, "split")
	}

	var ls []*sent.Sentence
	for _, w := range words {
		s.buf = append(s.buf, w)
		if w.Form == "." {
			ls = append(ls, &sent.Sentence{Words: s.buf})
			s.buf = nil
		}
	}

	if flush && len(s.buf) > 0 {
		ls = append(ls, &sent.Sentence{Words: s.buf})
		s.buf = nil
	}

	return ls, nil
}

func (s *stubSession) Close() error {
	s.closed = true
	s.eng.closed++
	return nil
}

func (e *stubEngine) AnalyzeMorphology(ls []*sent.Sentence) error {
	return e.record("morphology", ls)
}

func (e *stubEngine) Tag(ls []*sent.Sentence) error {
	for _, s := range ls {
		for i := range s.Words {
			s.Words[i].Lemma = strings.ToLower(s.Words[i].Form)
			s.Words[i].Tag = "X"
		}
	}
	return e.record("tag", ls)
}

func (e *stubEngine) AnnotateSenses(ls []*sent.Sentence) error {
	return e.record("senses", ls)
}

func (e *stubEngine) ParseConstituency(ls []*sent.Sentence) error {
	for _, s := range ls {
		root := &sent.ParseNode{Label: "S"}
		for i := range s.Words {
			root.Children = append(root.Children, sent.NewLeaf(&s.Words[i], i == 0))
		}
		s.ParseTree = root
	}
	return e.record("constituency", ls)
}

func (e *stubEngine) ParseDependency(ls []*sent.Sentence) error {
	for _, s := range ls {
		s.DepTree = &sent.DepNode{Word: &s.Words[0], LinkLabel: "top"}
	}
	return e.record("dependency", ls)
}

func collect(t *testing.T, p *Pipeline, lines ...string) ([]*sent.Sentence, error) {
	t.Helper()
	var out []*sent.Sentence
	for s, err := range p.Run(slices.Values(lines)) {
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}

func TestRun_StageOrder(t *testing.T) {
	eng := &stubEngine{}
	ls, err := collect(t, New(eng), "El gato duerme .")
	require.NoError(t, err)
	require.Len(t, ls, 1)

	assert.Equal(t, []string{
		"tokenize", "split",
		"morphology", "tag", "senses", "constituency", "dependency",
		"flush",
	}, eng.calls)

	s := ls[0]
	assert.Equal(t, "gato", s.Words[1].Lemma)
	assert.NotNil(t, s.ParseTree)
	assert.NotNil(t, s.DepTree)
}

func TestRun_SentencesAcrossLines(t *testing.T) {
	eng := &stubEngine{}
	ls, err := collect(t, New(eng), "Hola mundo", "cruel . Adios .", "sin punto")
	require.NoError(t, err)
	require.Len(t, ls, 3)

	assert.Equal(t, "Hola mundo cruel .", ls[0].Text())
	assert.Equal(t, "Adios .", ls[1].Text())
	// the flush emits the trailing words
	assert.Equal(t, "sin punto", ls[2].Text())

	assert.Equal(t, 1, eng.opened)
	assert.Equal(t, 1, eng.closed)
}

func TestRun_EmptyInput(t *testing.T) {
	eng := &stubEngine{}
	ls, err := collect(t, New(eng))
	require.NoError(t, err)
	assert.Empty(t, ls)

	// no batch, no stage runs
	assert.Equal(t, []string{"flush"}, eng.calls)
	assert.Equal(t, 1, eng.opened)
	assert.Equal(t, 1, eng.closed)
}

func TestRun_EarlyStopClosesSession(t *testing.T) {
	eng := &stubEngine{}
	p := New(eng)

	n := 0
	for s, err := range p.Run(slices.Values([]string{"A . B . C ."})) {
		require.NoError(t, err)
		require.NotNil(t, s)
		n++
		break
	}

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, eng.closed)
	assert.True(t, eng.sessions[0].closed)
	assert.NotContains(t, eng.calls, "flush")
}

func TestRun_StageErrorIsFatal(t *testing.T) {
	eng := &stubEngine{failAt: "senses"}
	ls, err := collect(t, New(eng), "Uno .", "Dos .")

	require.Error(t, err)
	assert.ErrorIs(t, err, errStage)
	assert.Contains(t, err.Error(), "senses")
	assert.Empty(t, ls)

	// the second line is never read
	assert.Equal(t, []string{"tokenize", "split", "morphology", "tag", "senses"}, eng.calls)
	assert.Equal(t, 1, eng.closed)
}

func TestRun_OpenSessionError(t *testing.T) {
	eng := &stubEngine{openErr: errors.New("no splitter data")}
	_, err := collect(t, New(eng), "Hola .")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no splitter data")
	assert.Empty(t, eng.calls)
	assert.Equal(t, 0, eng.closed)
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	eng := &stubEngine{}
	require.NoError(t, New(eng).AnalyzeBatch(nil))
	assert.Empty(t, eng.calls)
}
