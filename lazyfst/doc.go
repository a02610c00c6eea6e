// Package lazyfst implements the lazy-FST skeleton: it glues an Operator
// (how to compute a state's start/transitions/final weight) to a
// cache.Cache (where to store the result) and exposes the pair as a
// read-only fst.ExpandedFst.
//
// The split is deliberate: a composition operator (compose.Op) and any
// other lazily-expanded operator are interchangeable behind the same
// LazyFst, so long as they implement Operator. Each query either returns
// a cached slot or delegates to the operator once, memoizes the result
// (value or error), and returns it. A failed computation poisons the
// slot: repeated queries for the same state observe the same error.
//
// Iteration (States) only ever walks ids already discovered; it is not
// required to expose the full reachable state space — Compute does that
// by crawling reachable states breadth-first from Start.
package lazyfst
