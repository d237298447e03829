package fix32

import "fmt"

// OverflowFunc is invoked with the full-width rescaled product when a
// multiplication result does not fit a signed 32-bit integer.
type OverflowFunc func(prod int64)

// OverflowError describes a product that did not fit 32 bits.
type OverflowError struct {
	Product int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("fix32: product %d (%#x) overflows int32", e.Product, e.Product)
}

// PanicOnOverflow is an OverflowFunc that panics with an *OverflowError.
func PanicOnOverflow(prod int64) {
	panic(&OverflowError{Product: prod})
}

// Multiplier multiplies 32-bit fixed-point numbers with a configurable
// rounding mode and overflow policy. The zero value rounds half away from
// zero and silently truncates on overflow.
type Multiplier struct {
	Mode       RoundingMode
	OnOverflow OverflowFunc
}

// MultiplierOption mutates a Multiplier.
type MultiplierOption func(*Multiplier)

// WithRounding sets the rounding mode applied to the 64-bit product.
func WithRounding(mode RoundingMode) MultiplierOption {
	return func(m *Multiplier) {
		m.Mode = mode
	}
}

// WithOverflow sets the overflow policy. A nil fn disables overflow checks.
func WithOverflow(fn OverflowFunc) MultiplierOption {
	return func(m *Multiplier) {
		m.OnOverflow = fn
	}
}

// NewMultiplier returns a Multiplier with the given options applied to the
// defaults (RoundHalfAwayFromZero, no overflow policy).
func NewMultiplier(opts ...MultiplierOption) Multiplier {
	var m Multiplier
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Mul multiplies a and b, divides the exact 64-bit product by 2^n with the
// configured rounding and returns the low 32 bits as a signed value.
//
// If an overflow policy is set it is called with the rescaled 64-bit value
// whenever the upper 33 bits of that value are not all equal.
func (m Multiplier) Mul(a, b int32, n int) int32 {
	prod := Scale(int64(a)*int64(b), n, m.Mode)

	if m.OnOverflow != nil {
		const mask = int64(-1) << 31
		if prod&mask != (prod>>32)&mask {
			m.OnOverflow(prod)
		}
	}

	return int32(prod)
}

// Mul multiplies two fixed-point numbers and divides the product by 2^n,
// rounding half away from zero. Overflow wraps silently.
func Mul(a, b int32, n int) int32 {
	return Multiplier{}.Mul(a, b, n)
}
