package treap

import "fmt"

// Traverse calls fn for every node of the subtree in sequence order.
// Traversal stops early if fn returns false.
func Traverse[T any](n *Node[T], fn func(*Node[T]) bool) {
	stack := make([]*Node[T], 0, 32)
	node := n
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			return
		}
		node = node.right
	}
}

// Flatten returns the subtree's chunks in sequence order as fresh leaves
// carrying the original priorities.
func Flatten[T any](n *Node[T]) []*Node[T] {
	var leaves []*Node[T]
	Traverse(n, func(node *Node[T]) bool {
		leaves = append(leaves, NewNode[T](node.chunk, node.priority, nil, nil))
		return true
	})
	return leaves
}

// Height returns the number of levels in the subtree.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.left), Height(n.right))
}

// Clone returns a deep copy of the node structure. Backing arrays are
// shared, not copied.
func Clone[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	c := *n
	c.left = Clone(n.left)
	c.right = Clone(n.right)
	return &c
}

// Equal reports whether two trees are structurally identical: same shape,
// priorities, chunk bounds, aggregates and backing arrays. Backing arrays
// are compared by identity, not content.
func Equal[T any](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.priority != b.priority ||
		a.chunk.offset != b.chunk.offset ||
		a.chunk.length != b.chunk.length ||
		a.size != b.size ||
		a.cost != b.cost ||
		!a.chunk.SameBuffer(b.chunk) {
		return false
	}
	return Equal(a.left, b.left) && Equal(a.right, b.right)
}

// Validate recomputes size and cost bottom-up and checks them against the
// stored values. When checkHeap is set it also checks that no child has a
// higher priority than its parent.
func Validate[T any](n *Node[T], checkHeap bool) error {
	_, _, err := validate(n, checkHeap)
	return err
}

func validate[T any](n *Node[T], checkHeap bool) (size, cost int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.chunk.length == 0 {
		return 0, 0, fmt.Errorf("node with empty chunk (size %d)", n.size)
	}
	if n.chunk.offset < 0 || n.chunk.offset+n.chunk.length > len(n.chunk.data) {
		return 0, 0, fmt.Errorf("chunk [%d:%d] outside backing array of length %d",
			n.chunk.offset, n.chunk.offset+n.chunk.length, len(n.chunk.data))
	}
	if checkHeap {
		for _, child := range []*Node[T]{n.left, n.right} {
			if child != nil && child.priority > n.priority {
				return 0, 0, fmt.Errorf("heap order: child priority %d above parent %d",
					child.priority, n.priority)
			}
		}
	}

	lSize, lCost, err := validate(n.left, checkHeap)
	if err != nil {
		return 0, 0, err
	}
	rSize, rCost, err := validate(n.right, checkHeap)
	if err != nil {
		return 0, 0, err
	}

	size = lSize + n.chunk.length + rSize
	cost = lCost + size + rCost
	if size != n.size {
		return 0, 0, fmt.Errorf("size %d, recomputed %d", n.size, size)
	}
	if cost != n.cost {
		return 0, 0, fmt.Errorf("cost %d, recomputed %d", n.cost, cost)
	}
	return size, cost, nil
}
