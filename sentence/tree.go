package sentence

// ParseNode is a node of a constituency tree. A leaf wraps exactly one word
// of the sentence; an internal node carries a non terminal label and its
// children, left to right.
type ParseNode struct {
	Label string `json:"label,omitempty"`

	// Head is true if the node is the head of its parent.
	Head bool `json:"head,omitempty"`

	Word     *Word        `json:"word,omitempty"`
	Children []*ParseNode `json:"children,omitempty"`
}

// NewLeaf returns a leaf node for w.
func NewLeaf(w *Word, head bool) *ParseNode {
	return &ParseNode{Word: w, Head: head}
}

// NewPhrase returns an internal node with the given label and children.
func NewPhrase(label string, head bool, children ...*ParseNode) *ParseNode {
	return &ParseNode{Label: label, Head: head, Children: children}
}

func (n *ParseNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the words of the subtree, left to right.
func (n *ParseNode) Leaves() []*Word {
	if n.IsLeaf() {
		if n.Word == nil {
			return nil
		}
		return []*Word{n.Word}
	}

	var words []*Word
	for _, c := range n.Children {
		words = append(words, c.Leaves()...)
	}

	return words
}

// Depth returns the number of levels of the subtree. A single leaf has depth 1.
func (n *ParseNode) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}

	return max + 1
}

// DepNode is a node of a dependency tree.
//
// Chunk children are constituency chunks attached to the node after the
// fact by the dependency parser; ChunkOrd keeps their surface position
// among the chunk siblings.
type DepNode struct {
	Word *Word `json:"word"`

	// Label is the syntactic label of the node itself.
	Label string `json:"label"`

	// LinkLabel is the label of the edge from the parent to this node.
	LinkLabel string `json:"link_label"`

	Children []*DepNode `json:"children,omitempty"`

	Chunk    bool `json:"chunk,omitempty"`
	ChunkOrd int  `json:"chunk_ord,omitempty"`
}

// Depth returns the number of levels of the subtree.
func (n *DepNode) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}

	return max + 1
}

// Walk calls fn for every node of the subtree in depth first, stored order,
// with the parent of the node (nil for n itself).
func (n *DepNode) Walk(fn func(node, parent *DepNode)) {
	n.walk(nil, fn)
}

func (n *DepNode) walk(parent *DepNode, fn func(node, parent *DepNode)) {
	fn(n, parent)
	for _, c := range n.Children {
		c.walk(n, fn)
	}
}
