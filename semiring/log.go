package semiring

import (
	"math"
	"strconv"
)

// Log is the log semiring (ℝ ∪ {+∞}, ⊕_log, +, +∞, 0), used when the
// sum over paths (rather than the minimum) of path weights is required,
// e.g. computing the total probability mass of a weighted language.
//
// a ⊕ b = -log(e^-a + e^-b); a ⊗ b = a + b.
type Log struct {
	Value float64
}

// NewLog constructs a Log weight from a raw -log-probability.
func NewLog(v float64) Log { return Log{Value: v} }

// LogZero is the log semiring's additive identity, +∞.
func LogZero() Log { return Log{Value: math.Inf(1)} }

// LogOne is the log semiring's multiplicative identity, 0.
func LogOne() Log { return Log{Value: 0} }

func (l Log) String() string { return strconv.FormatFloat(l.Value, 'g', -1, 64) }

// Zero implements Weight.
func (l Log) Zero() Weight { return LogZero() }

// One implements Weight.
func (l Log) One() Weight { return LogOne() }

// Plus implements Weight: -log(e^-a + e^-b), with the usual conventions
// for +∞ operands (an absent path contributes nothing to the sum).
func (l Log) Plus(rhs Weight) Weight {
	o := rhs.(Log)
	if math.IsInf(l.Value, 1) {
		return o
	}
	if math.IsInf(o.Value, 1) {
		return l
	}
	// Factor out the smaller exponent for numerical stability.
	lo, hi := l.Value, o.Value
	if hi < lo {
		lo, hi = hi, lo
	}
	return Log{Value: lo - math.Log1p(math.Exp(lo-hi))}
}

// Times implements Weight as +.
func (l Log) Times(rhs Weight) Weight {
	o := rhs.(Log)
	return Log{Value: l.Value + o.Value}
}

// IsZero implements Weight.
func (l Log) IsZero() bool { return l.Equal(LogZero()) }

// IsOne implements Weight.
func (l Log) IsOne() bool { return l.Equal(LogOne()) }

// Equal implements Weight, comparing values modulo KDelta.
func (l Log) Equal(rhs Weight) bool {
	o, ok := rhs.(Log)
	if !ok {
		return false
	}
	return l.Quantize(KDelta).(Log).Value == o.Quantize(KDelta).(Log).Value
}

// Quantize implements Quantizable.
func (l Log) Quantize(delta float64) Weight {
	if math.IsInf(l.Value, 0) {
		return l
	}
	return Log{Value: math.Floor(l.Value/delta+0.5) * delta}
}

// Divide implements WeaklyDivisible: ⊗ is +, so z = w - rhs.
func (l Log) Divide(rhs Weight) (Weight, error) {
	o := rhs.(Log)
	if o.IsZero() {
		return nil, ErrNotDivisible
	}
	return Log{Value: l.Value - o.Value}, nil
}

var (
	_ Weight          = Log{}
	_ WeaklyDivisible = Log{}
	_ Quantizable     = Log{}
)
