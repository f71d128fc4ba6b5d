package rope

import (
	"fmt"

	"github.com/dshills/cartesian/internal/engine/treap"
)

// Stats holds shape metrics of a rope.
type Stats struct {
	// Len is the number of elements.
	Len int

	// Chunks is the number of nodes, each holding one chunk.
	Chunks int

	// Height is the number of levels in the tree.
	Height int

	// Cost is the sum over all chunks of chunk length times depth.
	Cost int

	// AverageAccess is Cost / Len: the expected number of nodes visited
	// to read a uniformly random element.
	AverageAccess float64
}

// String returns a compact, log-friendly form.
func (s Stats) String() string {
	return fmt.Sprintf("len=%d chunks=%d height=%d cost=%d avg=%.3f",
		s.Len, s.Chunks, s.Height, s.Cost, s.AverageAccess)
}

// Stats returns the shape metrics of the rope.
func (r Rope[T]) Stats() Stats {
	return Stats{
		Len:           r.length,
		Chunks:        r.ChunkCount(),
		Height:        r.Height(),
		Cost:          r.Cost(),
		AverageAccess: r.AverageAccess(),
	}
}

// AverageAccess returns the expected number of nodes visited to read a
// uniformly random element. Zero for an empty rope.
func (r Rope[T]) AverageAccess() float64 {
	return r.root.AverageAccess()
}

// Cost returns the total access cost of the tree.
func (r Rope[T]) Cost() int {
	return r.root.Cost()
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope[T]) Height() int {
	return treap.Height(r.root)
}

// ChunkCount returns the total number of chunks in the rope.
func (r Rope[T]) ChunkCount() int {
	count := 0
	treap.Traverse(r.root, func(*treap.Node[T]) bool {
		count++
		return true
	})
	return count
}

// ChunkSizes returns the chunk lengths in sequence order.
func (r Rope[T]) ChunkSizes() []int {
	sizes := make([]int, 0, 8)
	it := r.Chunks()
	for it.Next() {
		sizes = append(sizes, it.Chunk().Len())
	}
	return sizes
}
