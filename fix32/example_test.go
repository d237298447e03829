package fix32_test

import (
	"fmt"

	"github.com/cwbudde/algo-fix32/fix32"
)

func ExampleMul() {
	a := fix32.FromFloat64(1.5, 16)
	b := fix32.FromFloat64(-2.25, 16)

	p := fix32.Value{Raw: fix32.Mul(a.Raw, b.Raw, 16), Scale: 16}
	fmt.Println(p.Float64())
	// Output:
	// -3.375
}

func ExampleScale() {
	fmt.Println(fix32.Scale32(5, 1, fix32.RoundHalfUp), fix32.Scale32(5, 1, fix32.RoundHalfDown))
	fmt.Println(fix32.Scale32(-5, 1, fix32.RoundHalfAwayFromZero), fix32.Scale32(-5, 1, fix32.RoundHalfTowardZero))
	// Output:
	// 3 2
	// -3 -2
}

func ExampleInvSqrt() {
	// 2.0 with 28 fractional bits.
	m, scale := fix32.InvSqrt(2<<28, 28)
	fmt.Printf("mantissa=%d scale=%d value=%.5f\n", m, scale, fix32.ToFloat64(int64(m), scale))
	// Output:
	// mantissa=759209682 scale=30 value=0.70707
}

func ExampleAtan2() {
	one := int32(1) << 28

	angle := fix32.Atan2(one, -one, 28)
	fmt.Printf("%.4f rad\n", fix32.ToFloat64(int64(angle), fix32.AngleScale))
	// Output:
	// 2.3513 rad
}

func ExampleMultiplier() {
	m := fix32.NewMultiplier(
		fix32.WithRounding(fix32.RoundHalfTowardZero),
		fix32.WithOverflow(func(prod int64) {
			fmt.Printf("overflow: %#x\n", prod)
		}),
	)

	fmt.Println(m.Mul(0x7FFFFFFF, 0x7FFFFFFF, 0))
	// Output:
	// overflow: 0x3fffffff00000001
	// 1
}
