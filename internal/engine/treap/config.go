package treap

import "sync/atomic"

// DefaultDirectCopyThreshold is the combined size at or below which two
// leaves are merged by copying into a single leaf.
const DefaultDirectCopyThreshold = 32

var directCopyThreshold atomic.Int64

func init() {
	directCopyThreshold.Store(DefaultDirectCopyThreshold)
}

// DirectCopyThreshold returns the current small-merge flattening threshold.
func DirectCopyThreshold() int {
	return int(directCopyThreshold.Load())
}

// SetDirectCopyThreshold changes the flattening threshold and returns the
// previous value. Existing trees are unaffected; only later merges see it.
// Values below zero are treated as zero, which disables the fast path.
func SetDirectCopyThreshold(n int) int {
	if n < 0 {
		n = 0
	}
	return int(directCopyThreshold.Swap(int64(n)))
}
