// Package semiring defines the algebraic contract that transducer weights
// must satisfy, plus two reference implementations (Tropical, Log) used
// to exercise and test the rest of this module.
//
// A semiring (S, ⊕, ⊗, 0̄, 1̄) requires:
//
//   - (S, ⊕, 0̄) a commutative monoid
//   - (S, ⊗, 1̄) a monoid
//   - ⊗ distributes over ⊕
//   - 0̄ annihilates ⊗
//
// Optional traits layer on top: WeaklyDivisible (Divide), Complete
// (infinite ⊕ well defined), Star (Closure), Quantizable (real-valued,
// supports Quantize for decidable equality under floating point).
//
// Concrete semirings beyond Tropical and Log are out of scope for this
// package; callers may plug in their own Weight implementation.
package semiring
