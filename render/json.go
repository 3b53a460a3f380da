package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/segtree/sentence"
)

// JSONRenderer writes each sentence as one JSON object per line.
type JSONRenderer struct {
	W   io.Writer
	enc *json.Encoder
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w, enc: json.NewEncoder(w)}
}

// Render serializes the sentence with its words and both trees.
func (r *JSONRenderer) Render(s *sent.Sentence) error {
	return r.enc.Encode(s)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
