// Package sweep generates deterministic input sets for exercising and
// characterising the fixed-point approximations.
package sweep

import (
	"math"
	"math/rand"
)

// Geometric returns lo, then repeatedly adds max(1, v>>shift) until
// hi is exceeded, so consecutive values differ by roughly 2^-shift relative.
func Geometric(lo, hi uint32, shift uint) []uint32 {
	var out []uint32
	for v := uint64(lo); v <= uint64(hi); {
		out = append(out, uint32(v))
		step := v >> shift
		if step == 0 {
			step = 1
		}
		v += step
	}
	return out
}

// Mantissa returns n raw values evenly spaced over [1, 4) at scale 2^30.
func Mantissa(n int) []uint32 {
	out := make([]uint32, n)
	const span = 3 << 30
	for i := range out {
		out[i] = 1<<30 + uint32(uint64(span)*uint64(i)/uint64(n))
	}
	return out
}

// Circle returns n points evenly spaced in angle on a circle of the
// given raw radius, starting at -pi. Coordinates are rounded to nearest.
func Circle(n int, radius float64) (x, y []int32, angle []float64) {
	x = make([]int32, n)
	y = make([]int32, n)
	angle = make([]float64, n)
	for i := range x {
		th := -math.Pi + 2*math.Pi*float64(i)/float64(n)
		x[i] = int32(math.Round(radius * math.Cos(th)))
		y[i] = int32(math.Round(radius * math.Sin(th)))
		angle[i] = math.Atan2(float64(y[i]), float64(x[i]))
	}
	return x, y, angle
}

// DeterministicInt32 returns n pseudo-random values with a fixed seed.
func DeterministicInt32(seed int64, n int) []int32 {
	out := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int32(rng.Uint32())
	}
	return out
}
