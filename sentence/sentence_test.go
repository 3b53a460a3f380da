package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_SensesString(t *testing.T) {
	w := Word{Form: "casa"}
	assert.Equal(t, "", w.SensesString())

	w.Senses = []Sense{{Id: "02913152-n", Score: 0.5}, {Id: "03544360-n", Score: 0}}
	assert.Equal(t, "02913152-n:0.5/03544360-n:0", w.SensesString())
}

func TestParseNode_LeavesAndDepth(t *testing.T) {
	s := Sentence{Words: []Word{
		{Form: "El", Lemma: "el", Tag: "DA0MS0"},
		{Form: "gato", Lemma: "gato", Tag: "NCMS000"},
		{Form: "duerme", Lemma: "dormir", Tag: "VMIP3S0"},
	}}

	tree := NewPhrase("S", false,
		NewPhrase("sn", false, NewLeaf(&s.Words[0], false), NewLeaf(&s.Words[1], true)),
		NewPhrase("grup-verb", true, NewLeaf(&s.Words[2], true)),
	)

	leaves := tree.Leaves()
	assert.Len(t, leaves, 3)
	for i, l := range leaves {
		assert.Same(t, &s.Words[i], l)
	}

	assert.Equal(t, 3, tree.Depth())
	assert.True(t, tree.Children[1].Children[0].IsLeaf())
}

func TestDepNode_Walk(t *testing.T) {
	root := &DepNode{Label: "grup-verb", LinkLabel: "top", Children: []*DepNode{
		{Label: "sn", LinkLabel: "subj", Children: []*DepNode{{Label: "d", LinkLabel: "espec"}}},
		{Label: "F-term", LinkLabel: "f"},
	}}

	var labels []string
	parents := 0
	root.Walk(func(n, p *DepNode) {
		labels = append(labels, n.LinkLabel)
		if p != nil {
			parents++
		}
	})

	assert.Equal(t, []string{"top", "subj", "espec", "f"}, labels)
	assert.Equal(t, 3, parents)
	assert.Equal(t, 3, root.Depth())
}

func TestSentence_TextLemmasReindex(t *testing.T) {
	s := Sentence{Words: []Word{{Form: "Hola", Lemma: "hola", Index: 7}, {Form: "!", Lemma: "!"}}}
	s.Reindex()

	assert.Equal(t, "Hola !", s.Text())
	assert.Equal(t, []string{"hola", "!"}, s.Lemmas())
	assert.Equal(t, 0, s.Words[0].Index)
	assert.Equal(t, 1, s.Words[1].Index)
}
