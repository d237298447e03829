package fix32

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// RoundingMode selects how a right shift breaks ties between two
// representable results.
type RoundingMode int

const (
	// RoundHalfAwayFromZero rounds 0.5 to 1 and -0.5 to -1 (RHAZ).
	// It is the zero value and the multiplier default.
	RoundHalfAwayFromZero RoundingMode = iota
	// RoundHalfUp rounds 0.5 to 1 and -0.5 to 0 (RHU).
	RoundHalfUp
	// RoundHalfDown rounds 0.5 to 0 and -0.5 to -1 (RHD).
	RoundHalfDown
	// RoundHalfTowardZero rounds 0.5 to 0 and -0.5 to 0 (RHTZ).
	RoundHalfTowardZero
)

// String returns the short name of the mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfAwayFromZero:
		return "RHAZ"
	case RoundHalfUp:
		return "RHU"
	case RoundHalfDown:
		return "RHD"
	case RoundHalfTowardZero:
		return "RHTZ"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode accepts the short names (RHAZ, RHU, RHD, RHTZ) and the
// long forms (half-away-from-zero, half-up, half-down, half-toward-zero),
// case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rhaz", "half-away-from-zero":
		return RoundHalfAwayFromZero, nil
	case "rhu", "half-up":
		return RoundHalfUp, nil
	case "rhd", "half-down":
		return RoundHalfDown, nil
	case "rhtz", "half-toward-zero":
		return RoundHalfTowardZero, nil
	default:
		return 0, fmt.Errorf("fix32: unknown rounding mode %q", s)
	}
}

// Scale divides v by 2^n, rounding to nearest with ties broken by mode.
//
// A bias of 2^(n-1), or 2^(n-1)-1 depending on mode and the sign of v, is
// added before the arithmetic right shift. Like the hardware, the addition
// wraps if v is within the bias of the type's maximum.
//
// For n == 0 v is returned unchanged; a negative n shifts left by -n.
// Unknown modes round half up.
func Scale[T constraints.Signed](v T, n int, mode RoundingMode) T {
	if n <= 0 {
		return v << uint(-n)
	}

	bias := T(1) << (n - 1)
	switch mode {
	case RoundHalfDown:
		bias--
	case RoundHalfAwayFromZero:
		if v < 0 {
			bias--
		}
	case RoundHalfTowardZero:
		if v >= 0 {
			bias--
		}
	}

	return (v + bias) >> n
}

// Scale32 is Scale instantiated for 32-bit values.
func Scale32(v int32, n int, mode RoundingMode) int32 {
	return Scale(v, n, mode)
}

// Scale64 is Scale instantiated for 64-bit values, as needed to round
// 32x32-bit products before truncating them back to 32 bits.
func Scale64(v int64, n int, mode RoundingMode) int64 {
	return Scale(v, n, mode)
}
