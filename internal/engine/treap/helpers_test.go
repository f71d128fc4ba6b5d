package treap

import (
	"testing"
)

// seed makes priority draws deterministic for the duration of a test.
func seed(t testing.TB, s uint64) {
	t.Helper()
	Seed(s)
	t.Cleanup(func() { Seed(0xdecafbad) })
}

// withThreshold sets DirectCopyThreshold for the duration of a test.
func withThreshold(t testing.TB, n int) {
	t.Helper()
	prev := SetDirectCopyThreshold(n)
	t.Cleanup(func() { SetDirectCopyThreshold(prev) })
}

// leaf builds a leaf over a fresh array holding items.
func leaf(items ...int) *Node[int] {
	return NewLeaf(NewChunk(items, 0, len(items)))
}

// content materializes the subtree in sequence order.
func content[T any](n *Node[T]) []T {
	out := make([]T, 0, n.Size())
	Traverse(n, func(node *Node[T]) bool {
		out = node.Chunk().AppendTo(out)
		return true
	})
	return out
}

// sequence returns [0, n).
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// chunkLengths returns the in-order chunk lengths of the subtree.
func chunkLengths[T any](n *Node[T]) []int {
	var out []int
	Traverse(n, func(node *Node[T]) bool {
		out = append(out, node.Len())
		return true
	})
	return out
}

// buildFromChunks folds the given chunk sizes of consecutive integers.
func buildFromChunks(sizes ...int) (*Node[int], []int) {
	var root *Node[int]
	var all []int
	next := 0
	for _, size := range sizes {
		items := make([]int, size)
		for i := range items {
			items[i] = next
			next++
		}
		all = append(all, items...)
		root = Merge(root, FromSlice(items))
	}
	return root, all
}
