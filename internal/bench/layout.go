package bench

import (
	"github.com/dshills/cartesian/internal/engine/rope"
	"github.com/dshills/cartesian/internal/engine/treap"
)

// Layout describes the chunking of a small rope.
type Layout struct {
	ChunkSizes []int
	Content    []int
	Stats      rope.Stats
}

// ChunkLayout concatenates pieces copies of sample under the given
// DirectCopyThreshold and reports the resulting chunking. The previous
// threshold is restored before returning.
func ChunkLayout(threshold, pieces int, sample []int) Layout {
	prev := treap.SetDirectCopyThreshold(threshold)
	defer treap.SetDirectCopyThreshold(prev)

	var b rope.Builder[int]
	for i := 0; i < pieces; i++ {
		b.AppendRope(rope.FromSlice(sample))
	}
	r := b.Build()

	return Layout{
		ChunkSizes: r.ChunkSizes(),
		Content:    r.Items(),
		Stats:      r.Stats(),
	}
}
