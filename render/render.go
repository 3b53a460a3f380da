package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
)

const Defaultformat = "text"

var (
	ErrUnknownFormat = errors.New("unknown format")

	// ErrNilTree is returned when a sentence lacks one of its trees.
	ErrNilTree = errors.New("nil tree")

	// ErrMalformedTree is returned for trees breaking the node invariants,
	// f.ex. a leaf without word.
	ErrMalformedTree = errors.New("malformed tree")
)

// Renderer writes analysed sentences in one output format.
type Renderer interface {
	Render(s *sent.Sentence) error
}

// LanguageRenderer is implemented by renderers that print the detected
// language of the text before any sentence.
type LanguageRenderer interface {
	Language(code string) error
}

func SupportedFormats() []string {
	return []string{"text", "xml", "conll", "json"}
}

// New returns the renderer for format, writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "text":
		return NewTextRenderer(w), nil
	case "xml":
		return NewXMLRenderer(w), nil
	case "conll":
		return NewCoNLLRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("%w %q, allowed values are %s", ErrUnknownFormat, format, strings.Join(SupportedFormats(), ", "))
}

// NextFormat returns the format following format in the SupportedFormats()
// order, wrapping around.
func NextFormat(format string) string {
	supported := SupportedFormats()
	for i, f := range supported {
		if f == format {
			if i == len(supported)-1 {
				return supported[0]
			}
			return supported[i+1]
		}
	}

	return Defaultformat
}

// printer accumulates the first write error, so that the recursive
// printers do not need to check every write.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) indent(depth, width int) {
	p.print(strings.Repeat(" ", depth*width))
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
