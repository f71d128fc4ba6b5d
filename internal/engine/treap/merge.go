package treap

// Merge concatenates two trees so that every element of l precedes every
// element of r. Neither input is modified; nodes on the merged spine are
// rebuilt and every other subtree is shared.
func Merge[T any](l, r *Node[T]) *Node[T] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}

	if l.size+r.size <= DirectCopyThreshold() && l.IsLeaf() && r.IsLeaf() {
		return concatLeaves(l, r)
	}

	if l.priority > r.priority {
		return NewNode(l.chunk, l.priority, l.left, Merge(l.right, r))
	}
	return NewNode(r.chunk, r.priority, Merge(l, r.left), r.right)
}

// concatLeaves copies two leaves into one fresh leaf. The leaf takes the
// higher of the two priorities so it can replace either operand below any
// parent without breaking heap order.
func concatLeaves[T any](l, r *Node[T]) *Node[T] {
	if !l.IsLeaf() || !r.IsLeaf() {
		panic(invariantf("direct copy merge on non-leaf operands (sizes %d, %d)", l.size, r.size))
	}
	return NewNode(concatChunks(l.chunk, r.chunk), max(l.priority, r.priority), nil, nil)
}

// Split partitions the subtree into the elements before index and the
// elements at or after index. Subtrees on either side of the cut are shared
// with n; only nodes on the path to the cut are rebuilt.
func Split[T any](n *Node[T], index int) (*Node[T], *Node[T]) {
	if n == nil {
		return nil, nil
	}
	if index <= 0 {
		return nil, n
	}
	if index >= n.size {
		return n, nil
	}

	lBound := n.left.Size()
	rBound := lBound + n.chunk.length

	switch {
	case index >= rBound:
		l, r := Split(n.right, index-rBound)
		return withRight(n, l), r

	case index < lBound:
		l, r := Split(n.left, index)
		return l, withLeft(n, r)

	default:
		// The cut falls inside this node's chunk. Each piece takes this
		// node's place above the child on its side; the children are reused.
		lc, rc := n.chunk.Split(index - lBound)
		l := n.left
		if !lc.IsEmpty() {
			l = NewNode(lc, piecePriority(n.left), n.left, nil)
		}
		return l, NewNode(rc, piecePriority(n.right), nil, n.right)
	}
}

// piecePriority draws a priority for a split piece, raised to the priority
// of the child it will sit on.
func piecePriority[T any](child *Node[T]) int {
	p := nextPriority()
	if child != nil {
		p = max(p, child.priority)
	}
	return p
}

// withRight rebuilds n with right as its right child. A split result may
// carry a freshly drawn priority above n's, in which case it is joined
// rather than hung below n.
func withRight[T any](n, right *Node[T]) *Node[T] {
	if right == nil || right.priority <= n.priority {
		return NewNode(n.chunk, n.priority, n.left, right)
	}
	return join(NewNode(n.chunk, n.priority, n.left, nil), right)
}

// withLeft is the mirror of withRight.
func withLeft[T any](n, left *Node[T]) *Node[T] {
	if left == nil || left.priority <= n.priority {
		return NewNode(n.chunk, n.priority, left, n.right)
	}
	return join(left, NewNode(n.chunk, n.priority, nil, n.right))
}

// join is Merge without the direct copy path: every input node keeps its
// backing array and only the merged spine is rebuilt.
func join[T any](l, r *Node[T]) *Node[T] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		return NewNode(l.chunk, l.priority, l.left, join(l.right, r))
	}
	return NewNode(r.chunk, r.priority, join(l, r.left), r.right)
}
