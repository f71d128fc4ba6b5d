package rope

import (
	"fmt"
	"time"

	"github.com/dshills/cartesian/internal/engine/treap"
)

// Rope is a persistent sequence of T.
// Operations return new Rope values; the original is never modified.
// This enables cheap snapshots and safe concurrent read access.
type Rope[T any] struct {
	root   *treap.Node[T]
	length int

	// unbalanced marks ropes derived from an optimized layout, whose
	// priorities no longer form a heap.
	unbalanced bool
}

// New creates an empty rope.
func New[T any]() Rope[T] {
	return Rope[T]{}
}

// FromSlice creates a rope holding a copy of items.
func FromSlice[T any](items []T) Rope[T] {
	root := treap.FromSlice(items)
	return Rope[T]{root: root, length: root.Size()}
}

// Of creates a rope from its arguments.
func Of[T any](items ...T) Rope[T] {
	return FromSlice(items)
}

// Join concatenates ropes from left to right.
func Join[T any](ropes ...Rope[T]) Rope[T] {
	var result Rope[T]
	for _, r := range ropes {
		result = result.Concat(r)
	}
	return result
}

// derive wraps a root produced from r.
func (r Rope[T]) derive(root *treap.Node[T]) Rope[T] {
	return Rope[T]{root: root, length: root.Size(), unbalanced: r.unbalanced}
}

// Len returns the number of elements.
func (r Rope[T]) Len() int {
	return r.length
}

// IsEmpty returns true if the rope holds no elements.
func (r Rope[T]) IsEmpty() bool {
	return r.length == 0
}

// Index returns the element at position i.
func (r Rope[T]) Index(i int) (T, error) {
	v, ok := r.root.At(i)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, r.length)
	}
	return v, nil
}

// Concat returns r followed by other.
// Returns a new rope; originals are unchanged.
func (r Rope[T]) Concat(other Rope[T]) Rope[T] {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	return Rope[T]{
		root:       treap.Merge(r.root, other.root),
		length:     r.length + other.length,
		unbalanced: r.unbalanced || other.unbalanced,
	}
}

// Split splits the rope at index, returning [0, index) and [index, Len()).
func (r Rope[T]) Split(index int) (Rope[T], Rope[T], error) {
	if index < 0 || index > r.length {
		return Rope[T]{}, Rope[T]{}, fmt.Errorf("%w: split at %d, length %d", ErrIndexOutOfRange, index, r.length)
	}
	left, right := treap.Split(r.root, index)
	return r.derive(left), r.derive(right), nil
}

// Range returns the elements from index to the end.
func (r Rope[T]) Range(index int) (Rope[T], error) {
	if index < 0 || index > r.length {
		return Rope[T]{}, fmt.Errorf("%w: range from %d, length %d", ErrIndexOutOfRange, index, r.length)
	}

	_, right := treap.Split(r.root, index)
	result := r.derive(right)
	if result.length+index != r.length {
		panic(&treap.InvariantError{
			Msg: fmt.Sprintf("range from %d of %d elements left %d", index, r.length, result.length),
		})
	}
	return result, nil
}

// Slice returns the elements in [start, end).
func (r Rope[T]) Slice(start, end int) (Rope[T], error) {
	if end < start {
		return Rope[T]{}, fmt.Errorf("%w: [%d, %d)", ErrRangeInvalid, start, end)
	}
	if start < 0 || end > r.length {
		return Rope[T]{}, fmt.Errorf("%w: [%d, %d), length %d", ErrIndexOutOfRange, start, end, r.length)
	}

	head, _ := treap.Split(r.root, end)
	_, mid := treap.Split(head, start)
	return r.derive(mid), nil
}

// Items returns the full content as a new slice.
// Use sparingly for large ropes.
func (r Rope[T]) Items() []T {
	out := make([]T, 0, r.length)
	it := r.Chunks()
	for it.Next() {
		out = it.Chunk().AppendTo(out)
	}
	return out
}

// String formats the content like a slice.
func (r Rope[T]) String() string {
	return fmt.Sprint(r.Items())
}

// Optimized returns a rope with the same chunks arranged into the tree of
// minimum access cost. The rebuild is O(n³) in the number of chunks and is
// meant for ropes that are read far more often than they change.
func (r Rope[T]) Optimized() Rope[T] {
	if r.root == nil {
		return r
	}

	start := time.Now()
	leaves := treap.Flatten(r.root)
	root := treap.ConstructOptimal(leaves)

	log().Debug("rope optimized",
		"chunks", len(leaves),
		"len", r.length,
		"before", r.root.AverageAccess(),
		"after", root.AverageAccess(),
		"elapsed", time.Since(start))

	return Rope[T]{root: root, length: root.Size(), unbalanced: true}
}

// Equal reports whether the rope holds exactly the elements of seq.
func Equal[T comparable](r Rope[T], seq []T) bool {
	return r.EqualFunc(seq, func(a, b T) bool { return a == b })
}

// EqualFunc reports whether the rope matches seq element by element
// under eq.
func (r Rope[T]) EqualFunc(seq []T, eq func(a, b T) bool) bool {
	if r.length != len(seq) {
		return false
	}

	it := r.Chunks()
	for it.Next() {
		chunk, base := it.Chunk(), it.Offset()
		for i := 0; i < chunk.Len(); i++ {
			if !eq(chunk.At(i), seq[base+i]) {
				return false
			}
		}
	}
	return true
}

// CheckInvariants validates sizes, costs and, for ropes built only through
// merges and splits, heap order.
func (r Rope[T]) CheckInvariants() error {
	if got := r.root.Size(); got != r.length {
		return fmt.Errorf("cached length %d, tree size %d", r.length, got)
	}
	return treap.Validate(r.root, !r.unbalanced)
}
