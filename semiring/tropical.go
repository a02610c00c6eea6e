package semiring

import (
	"math"
	"strconv"
)

// Tropical is the min-plus semiring (ℝ ∪ {+∞}, min, +, +∞, 0), the
// classic weight set for shortest-path-style WFST computations.
//
// Tropical is quantizable: equality is decided modulo KDelta so that
// floating-point weights accumulated along different paths compare equal
// when they denote the same cost.
type Tropical struct {
	Value float64
}

// NewTropical constructs a Tropical weight from a raw cost.
func NewTropical(v float64) Tropical { return Tropical{Value: v} }

// TropicalZero is the tropical semiring's additive identity, +∞.
func TropicalZero() Tropical { return Tropical{Value: math.Inf(1)} }

// TropicalOne is the tropical semiring's multiplicative identity, 0.
func TropicalOne() Tropical { return Tropical{Value: 0} }

func (t Tropical) String() string { return strconv.FormatFloat(t.Value, 'g', -1, 64) }

// Zero implements Weight.
func (t Tropical) Zero() Weight { return TropicalZero() }

// One implements Weight.
func (t Tropical) One() Weight { return TropicalOne() }

// Plus implements Weight as min.
func (t Tropical) Plus(rhs Weight) Weight {
	o := rhs.(Tropical)
	if t.Value < o.Value {
		return t
	}
	return o
}

// Times implements Weight as +.
func (t Tropical) Times(rhs Weight) Weight {
	o := rhs.(Tropical)
	return Tropical{Value: t.Value + o.Value}
}

// IsZero implements Weight.
func (t Tropical) IsZero() bool { return t.Equal(TropicalZero()) }

// IsOne implements Weight.
func (t Tropical) IsOne() bool { return t.Equal(TropicalOne()) }

// Equal implements Weight, comparing values modulo KDelta.
func (t Tropical) Equal(rhs Weight) bool {
	o, ok := rhs.(Tropical)
	if !ok {
		return false
	}
	return t.Quantize(KDelta).(Tropical).Value == o.Quantize(KDelta).(Tropical).Value
}

// Quantize implements Quantizable: v maps to floor(v/delta + 1/2) * delta,
// leaving ±∞ fixed.
func (t Tropical) Quantize(delta float64) Weight {
	if math.IsInf(t.Value, 0) {
		return t
	}
	return Tropical{Value: math.Floor(t.Value/delta+0.5) * delta}
}

// Divide implements WeaklyDivisible: for the tropical semiring ⊗ is +, so
// z = w - rhs, undefined (ErrNotDivisible) when rhs is zero (+∞).
func (t Tropical) Divide(rhs Weight) (Weight, error) {
	o := rhs.(Tropical)
	if o.IsZero() {
		return nil, ErrNotDivisible
	}
	return Tropical{Value: t.Value - o.Value}, nil
}

// Closure implements Star. It is defined for non-negative weights, where
// the infinite sum min(0, a, 2a, 3a, ...) converges to 0 (the semiring's
// One). For a negative weight the sum diverges, and Closure returns a
// Tropical holding -∞, a value outside the semiring's (ℝ ∪ {+∞}) set.
func (t Tropical) Closure() Weight {
	if t.Value >= 0 {
		return TropicalOne()
	}
	return Tropical{Value: math.Inf(-1)}
}

var (
	_ Weight          = Tropical{}
	_ WeaklyDivisible = Tropical{}
	_ Star            = Tropical{}
	_ Quantizable     = Tropical{}
)
