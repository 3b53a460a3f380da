package render

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
)

const xmlIndentWidth = 3

// XMLRenderer writes the morphological analysis of each sentence as <SENT>
// and <WORD> elements with all their candidate analyses, the constituency
// tree as nested <CHUNK> elements and the dependency tree as nested <NODE>
// elements.
type XMLRenderer struct {
	W io.Writer
}

func NewXMLRenderer(w io.Writer) *XMLRenderer {
	return &XMLRenderer{W: w}
}

func (r *XMLRenderer) Render(s *sent.Sentence) error {
	if s.ParseTree == nil || s.DepTree == nil {
		return ErrNilTree
	}

	p := &printer{w: r.W}

	p.print("<SENT>\n")
	for _, w := range s.Words {
		p.printf("  <WORD form=\"%s\" lemma=\"%s\" pos=\"%s\">\n", esc(w.Form), esc(w.Lemma), esc(w.Tag))
		for _, a := range w.Analyses {
			p.printf("    <ANALYSIS lemma=\"%s\" pos=\"%s\" prob=\"%s\"/>\n", esc(a.Lemma), esc(a.Tag), strconv.FormatFloat(a.Prob, 'g', 6, 64))
		}
		p.print("  </WORD>\n")
	}
	p.print("</SENT>\n")

	p.xmlParseTree(s.ParseTree, 0)
	p.xmlDepTree(s.DepTree, 0)

	return p.err
}

func (p *printer) xmlParseTree(n *sent.ParseNode, depth int) {
	p.indent(depth, xmlIndentWidth)

	if n.IsLeaf() {
		if n.Word == nil {
			p.fail(ErrMalformedTree)
			return
		}
		p.printf("<WORD form=\"%s\" lemma=\"%s\" tag=\"%s\" head=\"%s\" />\n", esc(n.Word.Form), esc(n.Word.Lemma), esc(n.Word.Tag), headAttr(n.Head))
		return
	}

	p.printf("<CHUNK type=\"%s\" head=\"%s\">\n", esc(n.Label), headAttr(n.Head))
	for _, c := range n.Children {
		p.xmlParseTree(c, depth+1)
	}

	p.indent(depth, xmlIndentWidth)
	p.print("</CHUNK>\n")
}

func (p *printer) xmlDepTree(n *sent.DepNode, depth int) {
	if n.Word == nil {
		p.fail(ErrMalformedTree)
		return
	}

	p.indent(depth, xmlIndentWidth)
	p.printf("<NODE func=\"%s\" synt=\"%s\" form=\"%s\" lemma=\"%s\" tag=\"%s\"", esc(n.Label), esc(n.LinkLabel), esc(n.Word.Form), esc(n.Word.Lemma), esc(n.Word.Tag))

	if len(n.Children) == 0 {
		p.print(" />\n")
		return
	}

	p.print(">\n")
	for _, c := range ChildOrder(n) {
		p.xmlDepTree(c, depth+1)
	}

	p.indent(depth, xmlIndentWidth)
	p.print("</NODE>\n")
}

func headAttr(head bool) string {
	if head {
		return "1"
	}
	return "0"
}

func esc(s string) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

var _ Renderer = (*XMLRenderer)(nil)
