// Package treap implements the persistent implicit-key treap behind the
// rope package.
//
// Every node holds a chunk of a shared, read-only backing array together
// with its subtree size and cost. Positions are implicit: an element's
// index is the number of elements to its left, found by walking subtree
// sizes. Nodes are immutable; Merge and Split rebuild only the nodes on the
// path they touch and share everything else, so older roots remain valid.
//
// Priorities are drawn from a process-wide Source (see SetSource and Seed)
// and keep trees built by Merge balanced in expectation. ConstructOptimal
// trades that property for the minimum-cost static layout of a fixed chunk
// sequence.
package treap
