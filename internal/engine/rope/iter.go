package rope

import (
	"iter"

	"github.com/dshills/cartesian/internal/engine/treap"
)

// ChunkIterator iterates over chunks in a rope.
type ChunkIterator[T any] struct {
	cursor  *Cursor[T]
	started bool
	chunk   treap.Chunk[T]
	offset  int
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope[T]) Chunks() *ChunkIterator[T] {
	return &ChunkIterator[T]{cursor: NewCursor(r)}
}

// Next advances to the next chunk.
// Returns true if there is a chunk, false if iteration is complete.
func (it *ChunkIterator[T]) Next() bool {
	if !it.started {
		it.started = true
	} else if !it.cursor.NextChunk() {
		return false
	}
	if !it.cursor.Valid() {
		return false
	}
	it.chunk, it.offset = it.cursor.Chunk()
	return true
}

// Chunk returns the current chunk.
func (it *ChunkIterator[T]) Chunk() treap.Chunk[T] {
	return it.chunk
}

// Offset returns the index of the first element of the current chunk.
func (it *ChunkIterator[T]) Offset() int {
	return it.offset
}

// ElementIterator iterates over elements in a rope.
type ElementIterator[T any] struct {
	cursor  *Cursor[T]
	started bool
}

// Elements returns an iterator over all elements in the rope.
func (r Rope[T]) Elements() *ElementIterator[T] {
	return &ElementIterator[T]{cursor: NewCursor(r)}
}

// ElementsFrom returns an iterator starting at element start.
func (r Rope[T]) ElementsFrom(start int) *ElementIterator[T] {
	c := NewCursor(r)
	c.Seek(start)
	return &ElementIterator[T]{cursor: c}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *ElementIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		return it.cursor.Valid()
	}
	return it.cursor.Next()
}

// Value returns the current element.
func (it *ElementIterator[T]) Value() T {
	return it.cursor.Value()
}

// Index returns the index of the current element.
func (it *ElementIterator[T]) Index() int {
	return it.cursor.Index()
}

// All returns an iterator over index/element pairs in order.
func (r Rope[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := NewCursor(r)
		for ok := c.Valid(); ok; ok = c.Next() {
			if !yield(c.Index(), c.Value()) {
				return
			}
		}
	}
}
