package treap

import "sync"

// maxPooledCells bounds the tables kept for reuse; larger tables are left
// to the garbage collector.
const maxPooledCells = 1 << 20

// dpTables is scratch space for ConstructOptimal: an n×n cost table and the
// root chosen for each interval, both indexed by from*n + to.
type dpTables struct {
	cost []int
	root []int
}

var dpTablePool = sync.Pool{
	New: func() interface{} {
		return new(dpTables)
	},
}

// getTables retrieves tables sized for n leaves from the pool.
func getTables(n int) *dpTables {
	t := dpTablePool.Get().(*dpTables)
	cells := n * n
	if cap(t.cost) < cells {
		t.cost = make([]int, cells)
		t.root = make([]int, cells)
	} else {
		t.cost = t.cost[:cells]
		t.root = t.root[:cells]
	}
	return t
}

// putTables returns tables to the pool.
func putTables(t *dpTables) {
	if t == nil || cap(t.cost) > maxPooledCells {
		return
	}
	t.cost = t.cost[:0]
	t.root = t.root[:0]
	dpTablePool.Put(t)
}
