package treap

import "math"

// ConstructOptimal arranges leaves, kept in order, into the tree of minimum
// total cost. It is the optimal binary search tree recurrence with every key
// weighted by its chunk length:
//
//	cost(i, j) = min over k in [i, j] of cost(i, k-1) + cost(k+1, j) + weight(i, j)
//
// Intervals are filled by increasing width and the first minimum found (the
// lowest k) wins, so the result is deterministic. Heap order is not kept;
// priorities travel with their chunks unchanged. Runs in O(n³) time and
// O(n²) space.
func ConstructOptimal[T any](leaves []*Node[T]) *Node[T] {
	n := len(leaves)
	if n == 0 {
		return nil
	}

	prefix := make([]int, n+1)
	for i, leaf := range leaves {
		prefix[i+1] = prefix[i] + leaf.chunk.length
	}

	t := getTables(n)
	defer putTables(t)

	at := func(from, to int) int {
		if from > to {
			return 0
		}
		return t.cost[from*n+to]
	}

	for i, leaf := range leaves {
		t.cost[i*n+i] = leaf.chunk.length
		t.root[i*n+i] = i
	}

	for width := 1; width < n; width++ {
		for from := 0; from+width < n; from++ {
			to := from + width
			best, bestRoot := math.MaxInt, from
			for k := from; k <= to; k++ {
				if c := at(from, k-1) + at(k+1, to); c < best {
					best, bestRoot = c, k
				}
			}
			t.cost[from*n+to] = best + prefix[to+1] - prefix[from]
			t.root[from*n+to] = bestRoot
		}
	}

	return buildOptimal(leaves, t.root, n, 0, n-1)
}

func buildOptimal[T any](leaves []*Node[T], roots []int, n, from, to int) *Node[T] {
	if from > to {
		return nil
	}
	if from == to {
		return leaves[from]
	}
	k := roots[from*n+to]
	return NewNode(leaves[k].chunk, leaves[k].priority,
		buildOptimal(leaves, roots, n, from, k-1),
		buildOptimal(leaves, roots, n, k+1, to))
}

// Optimize rebuilds the subtree over the same ordered chunks with minimum
// cost.
func Optimize[T any](n *Node[T]) *Node[T] {
	return ConstructOptimal(Flatten(n))
}
