// Package pipeline runs raw text lines through the stages of an analysis
// engine and yields the resulting sentences.
package pipeline

import (
	"fmt"
	"iter"

	"github.com/revelaction/segtree/engine"
	sent "github.com/revelaction/segtree/sentence"
	"go.uber.org/zap"
)

type Pipeline struct {
	eng engine.Engine
	log *zap.Logger
}

type Option func(*Pipeline)

// WithLogger sets the logger used for per line debug output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

func New(eng engine.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{eng: eng, log: zap.NewNop()}
	for _, o := range opts {
		o(p)
	}

	return p
}

// stage is one of the batch transforms applied after splitting.
type stage struct {
	name string
	fn   func([]*sent.Sentence) error
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{"morphology", p.eng.AnalyzeMorphology},
		{"tagger", p.eng.Tag},
		{"senses", p.eng.AnnotateSenses},
		{"constituency parser", p.eng.ParseConstituency},
		{"dependency parser", p.eng.ParseDependency},
	}
}

// AnalyzeBatch runs the stages that follow the splitter over ls, in order.
func (p *Pipeline) AnalyzeBatch(ls []*sent.Sentence) error {
	if len(ls) == 0 {
		return nil
	}

	for _, st := range p.stages() {
		if err := st.fn(ls); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}

	return nil
}

// Run analyzes lines and yields the sentences in input order.
//
// One splitter session is opened when the iteration starts and closed when
// it ends, whether lines are exhausted, the consumer stops early or a stage
// fails. When lines are exhausted the session is flushed, so a last sentence
// without end punctuation is still yielded.
//
// An error is yielded once, with a nil sentence, and ends the run.
func (p *Pipeline) Run(lines iter.Seq[string]) iter.Seq2[*sent.Sentence, error] {
	return func(yield func(*sent.Sentence, error) bool) {
		sess, err := p.eng.OpenSession()
		if err != nil {
			yield(nil, fmt.Errorf("splitter: %w", err))
			return
		}

		defer func() {
			if err := sess.Close(); err != nil {
				p.log.Warn("closing splitter session", zap.Error(err))
			}
		}()

		emit := func(ls []*sent.Sentence) bool {
			if err := p.AnalyzeBatch(ls); err != nil {
				yield(nil, err)
				return false
			}

			for _, s := range ls {
				if !yield(s, nil) {
					return false
				}
			}

			return true
		}

		nline := 0
		for line := range lines {
			nline++

			words, err := p.eng.Tokenize(line)
			if err != nil {
				yield(nil, fmt.Errorf("tokenizer: line %d: %w", nline, err))
				return
			}

			ls, err := sess.Split(words, false)
			if err != nil {
				yield(nil, fmt.Errorf("splitter: line %d: %w", nline, err))
				return
			}

			p.log.Debug("line split", zap.Int("line", nline), zap.Int("words", len(words)), zap.Int("sentences", len(ls)))

			if !emit(ls) {
				return
			}
		}

		// No more lines: make sure the splitter does not retain anything.
		ls, err := sess.Split(nil, true)
		if err != nil {
			yield(nil, fmt.Errorf("splitter: flush: %w", err))
			return
		}

		p.log.Debug("session flushed", zap.Int("lines", nline), zap.Int("sentences", len(ls)))
		emit(ls)
	}
}
