package treap

// Chunk is a read-only view of a contiguous run of a backing array.
// Chunks never write through their backing array, so several chunks
// (and several nodes) may alias the same array over any ranges.
type Chunk[T any] struct {
	data   []T
	offset int
	length int
}

// NewChunk creates a chunk covering data[offset:offset+length].
// It panics if the range does not fit inside data.
func NewChunk[T any](data []T, offset, length int) Chunk[T] {
	if offset < 0 || length < 0 || offset+length > len(data) {
		panic(invariantf("chunk [%d:%d] outside backing array of length %d",
			offset, offset+length, len(data)))
	}
	return Chunk[T]{data: data, offset: offset, length: length}
}

// Offset returns the start of the chunk within its backing array.
func (c Chunk[T]) Offset() int {
	return c.offset
}

// Len returns the number of elements in the chunk.
func (c Chunk[T]) Len() int {
	return c.length
}

// IsEmpty returns true if the chunk holds no elements.
func (c Chunk[T]) IsEmpty() bool {
	return c.length == 0
}

// At returns the i-th element of the chunk.
// The caller is responsible for bounds.
func (c Chunk[T]) At(i int) T {
	return c.data[c.offset+i]
}

// AppendTo appends the chunk's elements to dst and returns the extended slice.
func (c Chunk[T]) AppendTo(dst []T) []T {
	return append(dst, c.data[c.offset:c.offset+c.length]...)
}

// Split splits the chunk at k, returning two views over the same array.
func (c Chunk[T]) Split(k int) (Chunk[T], Chunk[T]) {
	if k <= 0 {
		return Chunk[T]{data: c.data, offset: c.offset}, c
	}
	if k >= c.length {
		return c, Chunk[T]{data: c.data, offset: c.offset + c.length}
	}
	return Chunk[T]{data: c.data, offset: c.offset, length: k},
		Chunk[T]{data: c.data, offset: c.offset + k, length: c.length - k}
}

// SameBuffer reports whether both chunks view the same backing array.
func (c Chunk[T]) SameBuffer(other Chunk[T]) bool {
	if len(c.data) != len(other.data) {
		return false
	}
	if len(c.data) == 0 {
		return true
	}
	return &c.data[0] == &other.data[0]
}

// concatChunks copies a then b into one freshly allocated array.
func concatChunks[T any](a, b Chunk[T]) Chunk[T] {
	data := make([]T, 0, a.length+b.length)
	data = a.AppendTo(data)
	data = b.AppendTo(data)
	return Chunk[T]{data: data, length: len(data)}
}
