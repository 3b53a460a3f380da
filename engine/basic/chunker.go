package basic

import (
	"fmt"

	sent "github.com/revelaction/segtree/sentence"
)

const (
	labelRoot      = "S"
	labelNominal   = "sn"
	labelVerb      = "grup-verb"
	labelPrep      = "sp"
	labelAdverb    = "sadv"
	labelAdjective = "s-adj"
	labelInterj    = "interjeccio"
	labelConj      = "conj"
	labelTerm      = "F-term"
	labelPunct     = "F-no-c"
)

// sentence final punctuation tags
var termTags = map[string]bool{"Fp": true, "Fat": true, "Fit": true, "Fs": true}

// chunk is a run of words [start, end) with its head word.
type chunk struct {
	label      string
	start, end int
	head       int
}

// ParseConstituency groups the words of each sentence into chunks under an
// S root. The first verb chunk, or else the first chunk, is the head of the
// root. A one word sentence is a single leaf.
func (e *Engine) ParseConstituency(ls []*sent.Sentence) error {
	for n, s := range ls {
		if len(s.Words) == 0 {
			return fmt.Errorf("sentence %d has no words", n)
		}

		if len(s.Words) == 1 {
			s.ParseTree = sent.NewLeaf(&s.Words[0], false)
			continue
		}

		chunks := chunkWords(s.Words)

		head := 0
		for i, c := range chunks {
			if c.label == labelVerb {
				head = i
				break
			}
		}

		nodes := make([]*sent.ParseNode, 0, len(chunks))
		for i, c := range chunks {
			nodes = append(nodes, chunkNode(s.Words, c, i == head))
		}

		s.ParseTree = sent.NewPhrase(labelRoot, false, nodes...)
	}

	return nil
}

// class returns the uppercase first letter of a tag, X for empty tags.
func class(tag string) byte {
	if tag == "" {
		return 'X'
	}
	return tag[0]
}

func isNominal(c byte) bool {
	switch c {
	case 'D', 'A', 'N', 'Z', 'W', 'X':
		return true
	}
	return false
}

func chunkWords(words []sent.Word) []chunk {
	var chunks []chunk

	for i := 0; i < len(words); {
		tag := words[i].Tag
		c := chunk{start: i, end: i + 1, head: i}

		switch class(tag) {
		case 'F':
			c.label = labelPunct
			if termTags[tag] {
				c.label = labelTerm
			}
		case 'I':
			c.label = labelInterj
		case 'C':
			c.label = labelConj
		case 'R':
			c.label = labelAdverb
			c.end = runOf(words, i, 'R')
			c.head = c.end - 1
		case 'V':
			c.label = labelVerb
			c.end = runOf(words, i, 'V')
			c.head = c.end - 1
		case 'S':
			c.label = labelPrep
			c.end = i + 1
			if c.end < len(words) && class(words[c.end].Tag) == 'P' {
				c.end++
			} else {
				c.end = nominalRun(words, c.end)
			}
		case 'P':
			c.label = labelNominal
		default:
			c.end = nominalRun(words, i)
			if c.end == i {
				c.end = i + 1
			}
			c.label, c.head = nominalHead(words, i, c.end)
		}

		chunks = append(chunks, c)
		i = c.end
	}

	return chunks
}

func runOf(words []sent.Word, i int, c byte) int {
	for i < len(words) && class(words[i].Tag) == c {
		i++
	}
	return i
}

func nominalRun(words []sent.Word, i int) int {
	for i < len(words) && isNominal(class(words[i].Tag)) {
		i++
	}
	return i
}

// nominalHead returns the label and head of a nominal run: the last noun,
// number or date, else the last adjective of an adjective only run, else
// the last word.
func nominalHead(words []sent.Word, start, end int) (string, int) {
	onlyAdj := true
	head := -1
	for i := start; i < end; i++ {
		switch class(words[i].Tag) {
		case 'N', 'Z', 'W', 'X':
			head = i
		}
		if class(words[i].Tag) != 'A' {
			onlyAdj = false
		}
	}

	if onlyAdj {
		return labelAdjective, end - 1
	}

	if head < 0 {
		head = end - 1
	}

	return labelNominal, head
}

func chunkNode(words []sent.Word, c chunk, head bool) *sent.ParseNode {
	if c.label == labelPrep {
		children := []*sent.ParseNode{sent.NewLeaf(&words[c.start], true)}
		if c.end > c.start+1 {
			inner := chunk{start: c.start + 1, end: c.end}
			inner.label, inner.head = nominalHead(words, inner.start, inner.end)
			children = append(children, chunkNode(words, inner, false))
		}
		return sent.NewPhrase(labelPrep, head, children...)
	}

	leaves := make([]*sent.ParseNode, 0, c.end-c.start)
	for i := c.start; i < c.end; i++ {
		leaves = append(leaves, sent.NewLeaf(&words[i], i == c.head))
	}

	return sent.NewPhrase(c.label, head, leaves...)
}
