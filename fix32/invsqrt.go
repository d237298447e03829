package fix32

// DefaultNewtonIterations is the number of Newton-Raphson steps InvSqrt
// applies after the cubic interpolation. One step gives a relative error
// below 1 %, two below 0.01 %.
const DefaultNewtonIterations = 2

// Coefficients of p(a) = -11/432 a^3 + 19/72 a^2 - 137/144 a + 185/108, the
// cubic matching 1/sqrt(a) and its derivative at a = 1 and a = 4.
const (
	frac11Over432  = 0x684BDA13 // 11/432 at 2^36
	frac19Over72   = 0x871C71C7 // 19/72 at 2^33
	frac137Over144 = 0x3CE38E39 // 137/144 at 2^30
	frac185Over108 = 0x0DB425ED // 185/108 at 2^27

	threeHalves = 3 << 24 // 1.5 at 2^25
)

// mulHi returns the product of a and b divided by 2^33, rounded half up.
// Only the upper word of the 64-bit product survives.
func mulHi(a, b uint32) uint32 {
	return uint32((uint64(a)*uint64(b) + 1<<32) >> 33)
}

// InvSqrt approximates 1/sqrt(val / 2^scale).
//
// The result is returned as a mantissa together with its own scale: the
// approximation is mantissa / 2^outScale. The mantissa always lies in
// [2^29, 2^30], so it can be converted to int32 safely.
//
// An odd scale is accepted; val is then rounded to nearest by one bit and
// the scale lowered by one so the represented value is unchanged.
// InvSqrt is undefined for val == 0.
func InvSqrt(val uint32, scale int) (mantissa uint32, outScale int) {
	return InvSqrtN(val, scale, DefaultNewtonIterations)
}

// InvSqrtN is InvSqrt with an explicit number of Newton-Raphson iterations.
// Zero iterations return the bare cubic interpolation.
func InvSqrtN(val uint32, scale, iterations int) (mantissa uint32, outScale int) {
	// Let val = a * 2^(2k) with 1 <= a < 4, then sqrt(val) = sqrt(a) * 2^k.
	// The split needs an even scale.
	if scale&1 != 0 {
		val = val>>1 + val&1
		scale--
	}

	msb := msbEven(val)

	// 1 <= a < 4 at 2^30.
	a := val << (30 - msb)

	// Both msb and scale are even, so the arithmetic shift is exact for
	// negative n as well.
	n := (msb - scale) >> 1

	// a^2 at 2^27 (1 <= a^2 < 16), a^3 at 2^24 (1 <= a^3 < 64).
	aSqu := mulHi(a, a)
	aCub := mulHi(a, aSqu)

	// Additions before subtractions keep every unsigned intermediate
	// positive; the polynomial is evaluated at 2^27.
	res := frac185Over108 + mulHi(frac19Over72, aSqu)
	res -= mulHi(frac137Over144, a)
	res -= mulHi(frac11Over432, aCub)

	// 0.5 < res <= 1; move to 2^30, leaving the sign bit clear.
	res <<= 3

	for i := 0; i < iterations; i++ {
		// 0.25 < res^2 <= 1 at 2^28.
		resSqu := mulHi(res, res)

		// 0.125 <= a*res^2/2 < 2 at 2^25; 'a' is at 2^30 and mulHi halves.
		halfARes := mulHi(a, resSqu)

		// res stays at 2^30; 1.5 - a*res^2/2 is positive because
		// res < 0.8 whenever a > 2.
		res = uint32((uint64(res)*uint64(threeHalves-halfARes) + 1<<24) >> 25)
	}

	// 1/sqrt(val) = 1/sqrt(a) * 2^-n.
	return res, 30 + n
}
