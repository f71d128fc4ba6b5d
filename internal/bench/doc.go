// Package bench measures how much an optimal rebuild improves rope access
// cost.
//
// A trial concatenates a number of ropes with random lengths, rebuilds the
// result with Optimized and records the ratio of average access costs
// before and after. Runner executes trials concurrently and summarizes
// them in a Report; Metrics exports the same observations in the
// Prometheus text format.
package bench
