package fix32

import "math"

// Value is a signed 32-bit fixed-point number: Raw / 2^Scale.
type Value struct {
	Raw   int32
	Scale int
}

// FromFloat64 converts f to a Value with the given scale, rounding to
// nearest and saturating at the int32 range. NaN converts to zero.
func FromFloat64(f float64, scale int) Value {
	r := math.Round(math.Ldexp(f, scale))
	switch {
	case math.IsNaN(r):
		r = 0
	case r > math.MaxInt32:
		r = math.MaxInt32
	case r < math.MinInt32:
		r = math.MinInt32
	}
	return Value{Raw: int32(r), Scale: scale}
}

// Float64 returns the real number represented by v.
func (v Value) Float64() float64 {
	return ToFloat64(int64(v.Raw), v.Scale)
}

// Rescale returns v at a new scale, rounding with mode when precision is
// dropped. Bits shifted out on the left are lost.
func (v Value) Rescale(scale int, mode RoundingMode) Value {
	return Value{Raw: Scale(v.Raw, v.Scale-scale, mode), Scale: scale}
}

// ToFloat64 returns raw / 2^scale.
func ToFloat64(raw int64, scale int) float64 {
	return math.Ldexp(float64(raw), -scale)
}
