// Package cache implements the per-state memoization a lazy FST needs:
// three independent slots per state — start, outgoing transitions, and
// final weight — each written at most once and immutable thereafter.
//
// Two implementations share the same contract: HashMapCache, backed by a
// map and suited to composite state spaces explored sparsely or
// out of order, and VectorCache, backed by a dense growing slice and
// suited to state ids expected to be allocated contiguously. Both poison
// a slot on error: once ComputeTrs (or start/final) fails for a state,
// repeated queries observe the same error rather than recomputing.
package cache
