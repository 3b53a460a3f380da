package render

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	sent "github.com/revelaction/segtree/sentence"
)

const indentWidth = 2

// WriteParseTree writes the constituency tree rooted at n, with n at the
// given depth.
//
// Every node starts with depth*2 spaces and a "+" if it is the head of its
// parent. A leaf is written as (form lemma tag). An internal node is written
// as label_[, its children one level deeper, and a closing ] at its own
// depth. Every node ends with a new line.
func WriteParseTree(w io.Writer, n *sent.ParseNode, depth int) error {
	if n == nil {
		return fmt.Errorf("constituency: %w", ErrNilTree)
	}

	p := &printer{w: w}
	p.parseTree(n, depth)
	return p.err
}

// ParseTree returns the WriteParseTree rendering of n.
func ParseTree(n *sent.ParseNode, depth int) (string, error) {
	var buf bytes.Buffer
	if err := WriteParseTree(&buf, n, depth); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (p *printer) parseTree(n *sent.ParseNode, depth int) {
	p.indent(depth, indentWidth)
	if n.Head {
		p.print("+")
	}

	if n.IsLeaf() {
		if n.Word == nil {
			p.fail(fmt.Errorf("constituency: %w: leaf without word at depth %d", ErrMalformedTree, depth))
			return
		}
		p.print(wordString(n.Word))
	} else {
		p.printf("%s_[\n", n.Label)
		for _, c := range n.Children {
			p.parseTree(c, depth+1)
		}

		p.indent(depth, indentWidth)
		p.print("]")
	}

	p.print("\n")
}

// WriteDepTree writes the dependency tree rooted at n, with n at the given
// depth.
//
// A node is written as link/label/(form lemma tag). Nodes with children
// append " [", the children one level deeper in ChildOrder, and a closing ]
// at the node depth.
func WriteDepTree(w io.Writer, n *sent.DepNode, depth int) error {
	if n == nil {
		return fmt.Errorf("dependency: %w", ErrNilTree)
	}

	p := &printer{w: w}
	p.depTree(n, depth)
	return p.err
}

// DepTree returns the WriteDepTree rendering of n.
func DepTree(n *sent.DepNode, depth int) (string, error) {
	var buf bytes.Buffer
	if err := WriteDepTree(&buf, n, depth); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (p *printer) depTree(n *sent.DepNode, depth int) {
	if n.Word == nil {
		p.fail(fmt.Errorf("dependency: %w: node without word at depth %d", ErrMalformedTree, depth))
		return
	}

	p.indent(depth, indentWidth)
	p.printf("%s/%s/%s", n.LinkLabel, n.Label, wordString(n.Word))

	if len(n.Children) > 0 {
		p.print(" [\n")
		for _, c := range ChildOrder(n) {
			p.depTree(c, depth+1)
		}

		p.indent(depth, indentWidth)
		p.print("]")
	}

	p.print("\n")
}

// ChildOrder returns the children of n in output order: first the non chunk
// children in stored order, then the chunk children by ascending ChunkOrd.
// Chunk children sharing an ordinal keep their stored order.
func ChildOrder(n *sent.DepNode) []*sent.DepNode {
	ordered := make([]*sent.DepNode, 0, len(n.Children))
	var chunks []*sent.DepNode

	for _, c := range n.Children {
		if c.Chunk {
			chunks = append(chunks, c)
			continue
		}
		ordered = append(ordered, c)
	}

	slices.SortStableFunc(chunks, func(a, b *sent.DepNode) int {
		return a.ChunkOrd - b.ChunkOrd
	})

	return append(ordered, chunks...)
}

func wordString(w *sent.Word) string {
	return "(" + w.Form + " " + w.Lemma + " " + w.Tag + ")"
}
