package basic

import (
	"fmt"

	sent "github.com/revelaction/segtree/sentence"
)

const (
	linkTop       = "top"
	linkSubject   = "subj"
	linkObject    = "dobj"
	linkPrepObj   = "sp-obj"
	linkAdverbial = "cc"
	linkPunct     = "f"
	linkConj      = "conj"
	linkNoRule    = "modnorule"

	linkSpec    = "espec"
	linkAdj     = "s.a"
	linkNominal = "sn"
	linkAux     = "v"
	linkNoMatch = "modnomatch"
)

// ParseDependency builds the dependency tree of each sentence from its
// constituency tree. The head word of the head chunk is the root. Words of
// a chunk depend on the chunk head and the other chunks depend on the root,
// stored after the root's own words: first the chunks following the head
// chunk, then the preceding ones. Every chunk carries its surface position.
func (e *Engine) ParseDependency(ls []*sent.Sentence) error {
	for n, s := range ls {
		root := s.ParseTree
		if root == nil {
			return fmt.Errorf("sentence %d has no constituency tree", n)
		}

		if root.IsLeaf() {
			s.DepTree = &sent.DepNode{Word: root.Word, LinkLabel: linkTop}
			continue
		}

		hi := headChild(root)
		headChunk := root.Children[hi]

		top := phraseDep(headChunk)
		top.LinkLabel = linkTop

		var before, after []*sent.DepNode
		for i, c := range root.Children {
			if i == hi {
				continue
			}

			d := phraseDep(c)
			d.Chunk = true
			d.ChunkOrd = i + 1
			d.LinkLabel = chunkLink(c.Label, i < hi, headChunk.Label == labelVerb)

			if i < hi {
				before = append(before, d)
			} else {
				after = append(after, d)
			}
		}

		top.Children = append(top.Children, after...)
		top.Children = append(top.Children, before...)

		s.DepTree = top
	}

	return nil
}

func headChild(n *sent.ParseNode) int {
	for i, c := range n.Children {
		if c.Head {
			return i
		}
	}
	return 0
}

// phraseDep returns the dependency subtree of a constituent: its head word
// with the other words of the constituent below it.
func phraseDep(n *sent.ParseNode) *sent.DepNode {
	if n.IsLeaf() {
		return &sent.DepNode{Word: n.Word, Label: coarse(n.Word.Tag)}
	}

	hi := headChild(n)
	d := phraseDep(n.Children[hi])
	d.Label = n.Label

	for i, c := range n.Children {
		if i == hi {
			continue
		}

		cd := phraseDep(c)
		cd.LinkLabel = intraLink(n.Label, c)
		d.Children = append(d.Children, cd)
	}

	return d
}

func intraLink(parent string, c *sent.ParseNode) string {
	if !c.IsLeaf() {
		if parent == labelPrep {
			return linkNominal
		}
		return linkNoMatch
	}

	switch class(c.Word.Tag) {
	case 'D':
		return linkSpec
	case 'A':
		return linkAdj
	case 'V':
		return linkAux
	case 'N', 'P', 'Z', 'W':
		if parent == labelPrep {
			return linkNominal
		}
	}

	return linkNoMatch
}

func chunkLink(label string, before, verbHead bool) string {
	switch label {
	case labelNominal:
		if !verbHead {
			return linkNoRule
		}
		if before {
			return linkSubject
		}
		return linkObject
	case labelPrep:
		return linkPrepObj
	case labelAdverb:
		return linkAdverbial
	case labelTerm, labelPunct:
		return linkPunct
	case labelConj:
		return linkConj
	}

	return linkNoRule
}
