// Package rope provides a persistent sequence container backed by an
// implicit-key treap.
//
// A rope holds elements of one type in chunks of shared, read-only arrays.
// Concatenation, splitting and indexing run in expected logarithmic time,
// and every operation returns a new rope while leaving its inputs intact.
//
// Key features:
//   - O(log n) expected concatenation, split and random access
//   - Immutable values; derived ropes share unchanged subtrees
//   - Small ropes are kept flat by copying (see treap.SetDirectCopyThreshold)
//   - Optimized rebuilds a rope into the layout of minimum access cost
//   - Safe for concurrent readers
//
// Basic usage:
//
//	r := rope.Of(1, 2, 3).Concat(rope.Of(4, 5)).Concat(rope.Of(6))
//	v, _ := r.Index(4)            // 5
//	tail, _ := r.Range(2)         // [3 4 5 6]
//	fast := tail.Optimized()      // same content, cheapest shape
//
// Priorities for new chunks come from a process-wide random source that
// can be replaced with treap.SetSource or treap.Seed.
package rope
