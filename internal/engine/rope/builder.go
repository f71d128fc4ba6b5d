package rope

import "github.com/dshills/cartesian/internal/engine/treap"

// builderFlushSize is the number of buffered elements that triggers a
// flush into the tree.
const builderFlushSize = 1024

// Builder provides efficient incremental construction of a rope.
// It buffers appended elements and folds them into the tree in batches.
type Builder[T any] struct {
	root       *treap.Node[T]
	pending    []T
	unbalanced bool
}

// NewBuilder creates a new rope builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		pending: make([]T, 0, 64),
	}
}

// Append appends elements to the builder.
func (b *Builder[T]) Append(items ...T) {
	b.pending = append(b.pending, items...)
	if len(b.pending) >= builderFlushSize {
		b.flush()
	}
}

// AppendRope appends the content of r, sharing its tree.
func (b *Builder[T]) AppendRope(r Rope[T]) {
	if r.IsEmpty() {
		return
	}
	b.flush()
	b.root = treap.Merge(b.root, r.root)
	b.unbalanced = b.unbalanced || r.unbalanced
}

// flush folds the buffered elements into the tree. FromSlice copies them,
// so the buffer can be reused.
func (b *Builder[T]) flush() {
	if len(b.pending) == 0 {
		return
	}
	b.root = treap.Merge(b.root, treap.FromSlice(b.pending))
	clear(b.pending)
	b.pending = b.pending[:0]
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int {
	return b.root.Size() + len(b.pending)
}

// Reset clears the builder for reuse.
func (b *Builder[T]) Reset() {
	b.root = nil
	clear(b.pending)
	b.pending = b.pending[:0]
	b.unbalanced = false
}

// Build creates the rope from accumulated data.
// After calling Build, the builder is reset.
func (b *Builder[T]) Build() Rope[T] {
	b.flush()
	r := Rope[T]{root: b.root, length: b.root.Size(), unbalanced: b.unbalanced}
	b.Reset()
	return r
}
