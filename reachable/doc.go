// Package reachable implements a label-reachability index over an FST:
// given a state s and a label ℓ, it answers "is a transition labeled ℓ
// reachable from s?" in O(log k) after an upfront construction, instead
// of a fresh traversal per query. The path need not continue from that
// transition to a final state; ReachFinal answers that separately.
//
// The construction transforms the FST into an auxiliary graph that
// exposes each distinct label (and "reaches a final state") as its own
// sink state, condenses the result into a DAG of strongly connected
// components, numbers components in reverse topological order, and
// records each component's set of reachable sink indices as an
// IntervalSet. Reachable wraps this precomputed index; ReachLabel and
// ReachFinal are then pure interval-membership tests.
//
// The index is built and queried on its own: compose.Op does not consult
// it when pairing transitions.
package reachable
