package treap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNil(t *testing.T) {
	a := leaf(1, 2)
	assert.Same(t, a, Merge(nil, a))
	assert.Same(t, a, Merge(a, nil))
	assert.Nil(t, Merge[int](nil, nil))
}

func TestMergeDirectCopyBoundary(t *testing.T) {
	seed(t, 1)
	withThreshold(t, DefaultDirectCopyThreshold)

	t.Run("at threshold", func(t *testing.T) {
		a, b := leaf(sequence(20)...), leaf(sequence(12)...)
		m := Merge(a, b)

		require.True(t, m.IsLeaf())
		assert.Equal(t, 32, m.Size())
		assert.Equal(t, 32, m.Cost())
		assert.False(t, m.Chunk().SameBuffer(a.Chunk()))
		assert.Equal(t, append(sequence(20), sequence(12)...), content(m))
		assert.Equal(t, max(a.Priority(), b.Priority()), m.Priority())
	})

	t.Run("one past threshold", func(t *testing.T) {
		a, b := leaf(sequence(20)...), leaf(sequence(13)...)
		m := Merge(a, b)

		require.False(t, m.IsLeaf())
		assert.Equal(t, 33, m.Size())
		assert.Equal(t, []int{20, 13}, chunkLengths(m))
		assert.Equal(t, append(sequence(20), sequence(13)...), content(m))
		require.NoError(t, Validate(m, true))
	})
}

func TestMergeGeneralPath(t *testing.T) {
	withThreshold(t, 0)
	data := sequence(6)

	low := NewNode(NewChunk(data, 0, 3), 1, nil, nil)
	high := NewNode(NewChunk(data, 3, 3), 5, nil, nil)

	m := Merge(low, high)
	assert.Same(t, low, m.Left())
	assert.Equal(t, 5, m.Priority())
	assert.Equal(t, data, content(m))

	high2 := NewNode(NewChunk(data, 0, 3), 5, nil, nil)
	low2 := NewNode(NewChunk(data, 3, 3), 1, nil, nil)
	m = Merge(high2, low2)
	assert.Same(t, low2, m.Right())
	assert.Equal(t, 5, m.Priority())
	assert.Equal(t, data, content(m))

	// Ties go to the right operand.
	tieL := NewNode(NewChunk(data, 0, 3), 4, nil, nil)
	tieR := NewNode(NewChunk(data, 3, 3), 4, nil, nil)
	m = Merge(tieL, tieR)
	assert.Same(t, tieL, m.Left())
}

func TestConcatLeavesRejectsInternalNodes(t *testing.T) {
	data := sequence(4)
	child := NewNode(NewChunk(data, 0, 1), 1, nil, nil)
	parent := NewNode(NewChunk(data, 1, 1), 2, child, nil)
	other := NewNode(NewChunk(data, 2, 2), 3, nil, nil)

	assert.PanicsWithError(t,
		"treap invariant violated: direct copy merge on non-leaf operands (sizes 2, 2)",
		func() { concatLeaves(parent, other) })
}

func TestMergeSmallNonLeafTakesGeneralPath(t *testing.T) {
	withThreshold(t, 32)
	data := sequence(4)
	child := NewNode(NewChunk(data, 0, 1), 1, nil, nil)
	parent := NewNode(NewChunk(data, 1, 1), 2, child, nil)
	other := NewNode(NewChunk(data, 2, 2), 3, nil, nil)

	m := Merge(parent, other)
	assert.Equal(t, data, content(m))
	assert.Same(t, parent, m.Left())
}

func TestMergeLengthAdditivity(t *testing.T) {
	seed(t, 11)
	withThreshold(t, 8)

	a, _ := buildFromChunks(5, 9, 1, 30)
	b, _ := buildFromChunks(2, 2, 17)
	m := Merge(a, b)

	assert.Equal(t, a.Size()+b.Size(), m.Size())
	require.NoError(t, Validate(m, true))
}

func TestSplit(t *testing.T) {
	seed(t, 42)
	withThreshold(t, 6)

	root, all := buildFromChunks(3, 5, 1, 8, 4, 13, 2, 7)
	require.NoError(t, Validate(root, true))

	for k := -1; k <= len(all)+1; k++ {
		l, r := Split(root, k)
		cut := min(max(k, 0), len(all))

		require.Equal(t, cut, l.Size(), "split at %d", k)
		require.Equal(t, len(all)-cut, r.Size(), "split at %d", k)
		require.NoError(t, Validate(l, true), "left of %d", k)
		require.NoError(t, Validate(r, true), "right of %d", k)
		if cut > 0 {
			require.Equal(t, all[:cut], content(l), "left of %d", k)
		}
		if cut < len(all) {
			require.Equal(t, all[cut:], content(r), "right of %d", k)
		}
		require.Equal(t, all, content(Merge(l, r)), "rejoined at %d", k)
	}
}

func TestSplitEnds(t *testing.T) {
	root := leaf(1, 2, 3)

	l, r := Split(root, 0)
	assert.Nil(t, l)
	assert.Same(t, root, r)

	l, r = Split(root, 3)
	assert.Same(t, root, l)
	assert.Nil(t, r)

	l, r = Split[int](nil, 2)
	assert.Nil(t, l)
	assert.Nil(t, r)
}

func TestSplitInsideChunkSharesBuffer(t *testing.T) {
	seed(t, 5)
	root := leaf(sequence(10)...)

	l, r := Split(root, 4)
	require.True(t, l.IsLeaf())
	require.True(t, r.IsLeaf())
	assert.True(t, l.Chunk().SameBuffer(root.Chunk()))
	assert.True(t, r.Chunk().SameBuffer(root.Chunk()))
	assert.Equal(t, 0, l.Chunk().Offset())
	assert.Equal(t, 4, r.Chunk().Offset())
	assert.Equal(t, sequence(4), content(l))
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, content(r))
}

func TestSplitSharesUntouchedSubtrees(t *testing.T) {
	withThreshold(t, 0)
	data := sequence(9)
	left := NewNode(NewChunk(data, 0, 3), 1, nil, nil)
	right := NewNode(NewChunk(data, 6, 3), 2, nil, nil)
	// The root outranks any freshly drawn priority, so split pieces hang
	// directly below it.
	root := NewNode(NewChunk(data, 3, 3), math.MaxInt, left, right)

	// Cut inside the right child: the left child is reused as is.
	l, r := Split(root, 7)
	assert.Same(t, left, l.Left())
	assert.Equal(t, sequence(7), content(l))
	assert.Equal(t, []int{7, 8}, content(r))

	// Cut inside the left child: the right child is reused as is.
	l, r = Split(root, 2)
	assert.Same(t, right, r.Right())
	assert.Equal(t, []int{0, 1}, content(l))
	assert.Equal(t, data[2:], content(r))
}

func TestSplitReusesChildrenAtDefaultThreshold(t *testing.T) {
	seed(t, 17)
	withThreshold(t, DefaultDirectCopyThreshold)

	data := sequence(9)
	left := NewNode(NewChunk(data, 0, 3), 1, nil, nil)
	right := NewNode(NewChunk(data, 6, 3), 2, nil, nil)
	root := NewNode(NewChunk(data, 3, 3), 3, left, right)

	hasNode := func(tree, want *Node[int]) bool {
		found := false
		Traverse(tree, func(n *Node[int]) bool {
			found = n == want
			return !found
		})
		return found
	}

	tests := []struct {
		name  string
		index int
	}{
		{"inside root chunk", 4},
		{"at root chunk start", 3},
		{"inside right child", 7},
		{"inside left child", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := Split(root, tt.index)

			require.Equal(t, data[:tt.index], content(l))
			require.Equal(t, data[tt.index:], content(r))
			require.NoError(t, Validate(l, true))
			require.NoError(t, Validate(r, true))

			if tt.index >= 3 {
				assert.True(t, hasNode(l, left), "left child reallocated")
			}
			if tt.index <= 6 {
				assert.True(t, hasNode(r, right), "right child reallocated")
			}
			Traverse(l, func(n *Node[int]) bool {
				assert.True(t, n.Chunk().SameBuffer(root.Chunk()), "left piece copied")
				return true
			})
			Traverse(r, func(n *Node[int]) bool {
				assert.True(t, n.Chunk().SameBuffer(root.Chunk()), "right piece copied")
				return true
			})
		})
	}

	// Cut inside the root chunk: the children hang directly below the pieces.
	l, r := Split(root, 4)
	assert.Same(t, left, l.Left())
	assert.Same(t, right, r.Right())
}

func TestOperationsDoNotMutate(t *testing.T) {
	seed(t, 99)
	withThreshold(t, 5)

	root, _ := buildFromChunks(4, 4, 9, 1, 1, 12, 3)
	snapshot := Clone(root)
	require.True(t, Equal(root, snapshot))

	for k := 0; k <= root.Size(); k++ {
		Split(root, k)
	}
	Merge(root, root)
	Merge(root, leaf(1, 2))
	Optimize(root)
	Flatten(root)

	assert.True(t, Equal(root, snapshot))
	require.NoError(t, Validate(root, true))
}
