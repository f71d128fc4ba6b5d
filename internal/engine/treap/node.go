package treap

import "slices"

// Node is an immutable node of an implicit-key treap.
//
// A node owns one chunk of the sequence. Elements of the left subtree
// precede the chunk and elements of the right subtree follow it; positions
// are never stored, only derived from subtree sizes. Size and cost are
// computed once by NewNode and never change afterwards.
type Node[T any] struct {
	priority int
	chunk    Chunk[T]
	left     *Node[T]
	right    *Node[T]

	size int // elements in this subtree
	cost int // sum of size over every node in this subtree
}

// NewNode builds a node over chunk with the given priority and children.
// It is the only place size and cost are computed.
func NewNode[T any](chunk Chunk[T], priority int, left, right *Node[T]) *Node[T] {
	n := &Node[T]{
		priority: priority,
		chunk:    chunk,
		left:     left,
		right:    right,
	}
	n.size = left.Size() + chunk.length + right.Size()
	n.cost = left.Cost() + n.size + right.Cost()
	return n
}

// NewLeaf builds a childless node over chunk with a freshly drawn priority.
func NewLeaf[T any](chunk Chunk[T]) *Node[T] {
	return NewNode(chunk, nextPriority(), nil, nil)
}

// FromSlice builds a tree holding a private copy of items. The copy is cut
// into chunks of at most DirectCopyThreshold elements which are folded
// together with Merge.
func FromSlice[T any](items []T) *Node[T] {
	if len(items) == 0 {
		return nil
	}

	data := slices.Clone(items)
	step := max(DirectCopyThreshold(), 1)

	var root *Node[T]
	for off := 0; off < len(data); off += step {
		n := min(step, len(data)-off)
		root = Merge(root, NewLeaf(NewChunk(data, off, n)))
	}
	return root
}

// Priority returns the node's balance priority.
func (n *Node[T]) Priority() int {
	return n.priority
}

// Chunk returns the node's own chunk.
func (n *Node[T]) Chunk() Chunk[T] {
	return n.chunk
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Len returns the length of the node's own chunk.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return n.chunk.length
}

// Size returns the number of elements in the subtree. A nil node has size 0.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Cost returns the weighted-depth cost of the subtree: every chunk counts
// its length once per ancestor, itself included.
func (n *Node[T]) Cost() int {
	if n == nil {
		return 0
	}
	return n.cost
}

// AverageAccess returns the expected number of nodes visited to read a
// uniformly random element of the subtree.
func (n *Node[T]) AverageAccess() float64 {
	if n == nil || n.size == 0 {
		return 0
	}
	return float64(n.cost) / float64(n.size)
}

// IsLeaf returns true if the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// At returns the element at position i of the subtree.
// Returns false if i is out of range.
func (n *Node[T]) At(i int) (T, bool) {
	var zero T
	if n == nil || i < 0 || i >= n.size {
		return zero, false
	}

	node := n
	for node != nil {
		lBound := node.left.Size()
		if i < lBound {
			node = node.left
			continue
		}
		i -= lBound
		if i < node.chunk.length {
			return node.chunk.At(i), true
		}
		i -= node.chunk.length
		node = node.right
	}
	return zero, false
}
