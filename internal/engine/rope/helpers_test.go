package rope

import (
	"testing"

	"github.com/dshills/cartesian/internal/engine/treap"
)

func seed(t testing.TB, s uint64) {
	t.Helper()
	treap.Seed(s)
	t.Cleanup(func() { treap.Seed(0xdecafbad) })
}

func withThreshold(t testing.TB, n int) {
	t.Helper()
	prev := treap.SetDirectCopyThreshold(n)
	t.Cleanup(func() { treap.SetDirectCopyThreshold(prev) })
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// chunked builds a rope by concatenating consecutive runs of the given sizes.
func chunked(sizes ...int) (Rope[int], []int) {
	var r Rope[int]
	var all []int
	for _, size := range sizes {
		items := make([]int, size)
		for i := range items {
			items[i] = len(all) + i
		}
		all = append(all, items...)
		r = r.Concat(FromSlice(items))
	}
	return r, all
}
