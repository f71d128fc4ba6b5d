package rope

import "github.com/dshills/cartesian/internal/engine/treap"

// Cursor enables efficient traversal of a rope.
// It keeps the ancestors still to be visited on a stack, giving
// O(log n) seeking and amortized O(1) movement to the next element.
type Cursor[T any] struct {
	rope  Rope[T]
	stack []*treap.Node[T] // ancestors whose chunk follows the current node
	node  *treap.Node[T]   // node holding the current element, nil at end
	off   int              // offset within node's chunk
	index int              // absolute index of the current element
}

// NewCursor creates a cursor at the start of the rope.
func NewCursor[T any](r Rope[T]) *Cursor[T] {
	c := &Cursor[T]{
		rope:  r,
		stack: make([]*treap.Node[T], 0, 32),
	}
	c.Seek(0)
	return c
}

// Seek positions the cursor on element i.
// Returns false, leaving the cursor at the end, if i is out of range.
func (c *Cursor[T]) Seek(i int) bool {
	c.stack = c.stack[:0]
	c.node = nil
	c.off = 0

	if i < 0 || i >= c.rope.length {
		c.index = c.rope.length
		return false
	}

	c.index = i
	node := c.rope.root
	for node != nil {
		lBound := node.Left().Size()
		if i < lBound {
			c.stack = append(c.stack, node)
			node = node.Left()
			continue
		}
		i -= lBound
		if i < node.Len() {
			c.node = node
			c.off = i
			return true
		}
		i -= node.Len()
		node = node.Right()
	}
	return false
}

// Valid returns true if the cursor is on an element.
func (c *Cursor[T]) Valid() bool {
	return c.node != nil
}

// Index returns the absolute index of the current element, or Len() at
// the end.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Value returns the current element. The cursor must be valid.
func (c *Cursor[T]) Value() T {
	return c.node.Chunk().At(c.off)
}

// Chunk returns the chunk holding the current element and the absolute
// index of its first element.
func (c *Cursor[T]) Chunk() (treap.Chunk[T], int) {
	if c.node == nil {
		return treap.Chunk[T]{}, c.index
	}
	return c.node.Chunk(), c.index - c.off
}

// Next advances to the following element.
// Returns false once the cursor moves past the last element.
func (c *Cursor[T]) Next() bool {
	if c.node == nil {
		return false
	}
	c.index++
	c.off++
	if c.off < c.node.Len() {
		return true
	}
	return c.advanceNode()
}

// NextChunk advances to the first element of the following chunk.
func (c *Cursor[T]) NextChunk() bool {
	if c.node == nil {
		return false
	}
	c.index += c.node.Len() - c.off
	return c.advanceNode()
}

// advanceNode moves to the in-order successor of the current node.
func (c *Cursor[T]) advanceNode() bool {
	for n := c.node.Right(); n != nil; n = n.Left() {
		c.stack = append(c.stack, n)
	}
	c.off = 0
	if len(c.stack) == 0 {
		c.node = nil
		return false
	}
	c.node = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return true
}
