// Package fix32 provides deterministic 32-bit fixed-point arithmetic for
// targets without a floating-point unit.
//
// A fixed-point number is a raw integer r paired with a scale s that the
// caller tracks separately; the represented real value is r / 2^s. The scale
// is never encoded in the bits.
//
// # Operations
//
//   - [Scale]: divide by 2^n with rounding to nearest, tie-breaking per
//     [RoundingMode] (half up, half down, half away from zero, half toward zero).
//   - [Mul] and [Multiplier]: 32x32 -> 64-bit product rescaled by 2^n, with an
//     optional [OverflowFunc] invoked when the result does not fit 32 bits.
//   - [InvSqrt]: 1/sqrt(x) by cubic interpolation refined with Newton's
//     method; returns the mantissa together with a callee-chosen scale.
//   - [Atan2]: angle of (x, y) in radians at scale 2^28, using octant
//     reduction and the 0.28125-weighted rational approximation.
//
// Only integer shifts, widened multiplications and bit-position arithmetic
// are used, so results are bit-identical across platforms. The highest-bit
// search inside InvSqrt is served by a backend chosen at first use (see
// [BackendName]); building with the purego tag forces the portable one.
//
// All functions are pure and safe for concurrent use. None allocate.
package fix32
