// Package wfst is a library for building, manipulating, and lazily
// composing weighted finite-state transducers (WFSTs).
//
// It provides the algorithmic core shared by speech, translation, and
// morphology pipelines built on WFSTs:
//
//   - semiring/   — the algebraic contract weights must satisfy
//   - fst/        — state/transition model and a concrete mutable FST
//   - statetable/ — bijection between composite state tuples and ids
//   - cache/      — per-state memoization for lazily computed FSTs
//   - lazyfst/    — glues an operator to a cache behind the FST interface
//   - matcher/    — label lookup over a state's outgoing transitions
//   - trmap/      — per-transition rewrites and semiring conversion
//   - compose/    — the composition filter and composition operator
//   - reachable/  — interval-based label-reachability pruning index
//
// Composition is lazy: composing two FSTs allocates no more than their
// starting states until a consumer asks for transitions. Composite states
// are computed on demand, memoized, and exposed through the same
// core/expanded FST interface as any other transducer, so composition
// results can themselves be composed, searched, or materialized with
// lazyfst.Compute.
//
// Symbol tables, on-disk formats, and a command-line front-end are not
// part of this package; callers that need them bring their own.
package wfst
