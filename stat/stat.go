package stat

import (
	sent "github.com/revelaction/segtree/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences         int
	NumWords             int
	WordsPerSentenceMean int
	WordsPerSentenceDis  map[int]int

	// deepest trees seen
	MaxParseDepth int
	MaxDepDepth   int

	// chunks attached to dependency roots
	NumChunks int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{WordsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(s *sent.Sentence) {
	h.stats.NumSentences++
	h.stats.NumWords += len(s.Words)
	h.stats.WordsPerSentenceDis[len(s.Words)]++

	h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences

	if s.ParseTree != nil {
		h.stats.MaxParseDepth = max(h.stats.MaxParseDepth, s.ParseTree.Depth())
	}

	if s.DepTree != nil {
		h.stats.MaxDepDepth = max(h.stats.MaxDepDepth, s.DepTree.Depth())
		for _, c := range s.DepTree.Children {
			if c.Chunk {
				h.stats.NumChunks++
			}
		}
	}
}
