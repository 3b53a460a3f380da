package render

import (
	"fmt"
	"io"

	sent "github.com/revelaction/segtree/sentence"
)

// TextRenderer writes, per sentence, one line per word (form lemma tag
// senses), a blank line, the constituency tree and the dependency tree.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

// Language writes the detected language header, followed by a blank line.
func (r *TextRenderer) Language(code string) error {
	_, err := fmt.Fprintf(r.W, "Text language is: %s\n\n", code)
	return err
}

func (r *TextRenderer) Render(s *sent.Sentence) error {
	if err := r.Words(s); err != nil {
		return err
	}

	if err := WriteParseTree(r.W, s.ParseTree, 0); err != nil {
		return err
	}

	return WriteDepTree(r.W, s.DepTree, 0)
}

// Words writes the token table of s, followed by a blank line.
func (r *TextRenderer) Words(s *sent.Sentence) error {
	p := &printer{w: r.W}
	for _, w := range s.Words {
		p.printf("%s %s %s %s\n", w.Form, w.Lemma, w.Tag, w.SensesString())
	}

	p.print("\n")
	return p.err
}

// compile-time interface check
var (
	_ Renderer         = (*TextRenderer)(nil)
	_ LanguageRenderer = (*TextRenderer)(nil)
)
