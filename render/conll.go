package render

import (
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/segtree/sentence"
)

const (
	conllFieldSeparator = "\t"
	conllEmpty          = "_"
)

// CoNLLRenderer writes one tab separated row per word:
//
//	ID FORM LEMMA CPOSTAG POSTAG FEATS HEAD DEPREL PHEAD PDEPREL
//
// FEATS holds the senses string. HEAD and DEPREL are read from the
// dependency tree; the root has HEAD 0. A blank line ends each sentence.
type CoNLLRenderer struct {
	W io.Writer
}

func NewCoNLLRenderer(w io.Writer) *CoNLLRenderer {
	return &CoNLLRenderer{W: w}
}

type conllHead struct {
	head   int
	deprel string
}

func (r *CoNLLRenderer) Render(s *sent.Sentence) error {
	if s.DepTree == nil {
		return ErrNilTree
	}

	// 1-based ids, by word identity
	ids := make(map[*sent.Word]int, len(s.Words))
	for i := range s.Words {
		ids[&s.Words[i]] = i + 1
	}

	heads := map[int]conllHead{}
	s.DepTree.Walk(func(n, parent *sent.DepNode) {
		id, ok := ids[n.Word]
		if !ok {
			return
		}

		h := conllHead{deprel: n.LinkLabel}
		if parent != nil {
			h.head = ids[parent.Word]
		}
		heads[id] = h
	})

	p := &printer{w: r.W}
	for i, w := range s.Words {
		id := i + 1

		head, deprel := conllEmpty, conllEmpty
		if h, ok := heads[id]; ok {
			head = strconv.Itoa(h.head)
			deprel = field(h.deprel)
		}

		fields := []string{
			strconv.Itoa(id),
			field(w.Form),
			field(w.Lemma),
			field(coarseTag(w.Tag)),
			field(w.Tag),
			field(w.SensesString()),
			head,
			deprel,
			conllEmpty,
			conllEmpty,
		}
		p.print(strings.Join(fields, conllFieldSeparator))
		p.print("\n")
	}

	p.print("\n")
	return p.err
}

func coarseTag(tag string) string {
	if tag == "" {
		return ""
	}
	return tag[:1]
}

func field(value string) string {
	if value == "" {
		return conllEmpty
	}
	return value
}

var _ Renderer = (*CoNLLRenderer)(nil)
