package fix32

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fix32/internal/sweep"
	"github.com/cwbudde/algo-fix32/internal/testutil"
)

func invSqrtFloat(mantissa uint32, scale int) float64 {
	return ToFloat64(int64(mantissa), scale)
}

func TestInvSqrtGolden(t *testing.T) {
	tests := []struct {
		val       uint32
		scale     int
		mantissa  uint32
		wantScale int
	}{
		{1 << 30, 30, 1 << 30, 30},
		{1 << 31, 30, 759209682, 30},
		{3 << 30, 30, 619908261, 30},
		{math.MaxUint32, 30, 1 << 29, 30},
		{1, 0, 1 << 30, 30},
		{100, 0, 858990065, 33},
		{12345, -4, 618476520, 38},
		{7, 16, 811658592, 23},
		// odd scales are rounded to the next lower even scale
		{1 << 30, 31, 759209682, 29},
		{1 << 30, 29, 759209682, 30},
	}

	for _, tt := range tests {
		m, s := InvSqrt(tt.val, tt.scale)
		if m != tt.mantissa || s != tt.wantScale {
			t.Errorf("InvSqrt(%d, %d) = (%d, %d), want (%d, %d)",
				tt.val, tt.scale, m, s, tt.mantissa, tt.wantScale)
		}
	}
}

func TestInvSqrtNIterations(t *testing.T) {
	want := []uint32{710856856, 754721672, 759209682}
	for iters, w := range want {
		m, s := InvSqrtN(1<<31, 30, iters)
		if m != w || s != 30 {
			t.Errorf("InvSqrtN(2.0, iters=%d) = (%d, %d), want (%d, 30)", iters, m, s, w)
		}
	}
}

func TestInvSqrtOne(t *testing.T) {
	for iters := 0; iters <= 3; iters++ {
		m, s := InvSqrtN(1<<30, 30, iters)
		if m != 1<<30 || s != 30 {
			t.Fatalf("iters=%d: InvSqrt(1.0) = (%d, %d), want (2^30, 30)", iters, m, s)
		}
	}
}

func TestInvSqrtMantissaPrecision(t *testing.T) {
	tests := []struct {
		iters  int
		maxRel float64
	}{
		{1, 0.01},
		{2, 1e-4},
	}

	inputs := sweep.Mantissa(4096)
	for _, tt := range tests {
		worst := 0.0
		for _, v := range inputs {
			m, s := InvSqrtN(v, 30, tt.iters)
			want := 1 / math.Sqrt(ToFloat64(int64(v), 30))
			worst = math.Max(worst, testutil.RelErr(invSqrtFloat(m, s), want))
		}
		if worst >= tt.maxRel {
			t.Errorf("iters=%d: max rel err %.3g >= %.3g", tt.iters, worst, tt.maxRel)
		}
	}
}

func TestInvSqrtAcrossScales(t *testing.T) {
	inputs := sweep.Geometric(1, math.MaxUint32, 8)
	for _, scale := range []int{-8, 0, 2, 16, 30, 40} {
		for _, v := range inputs {
			m, s := InvSqrt(v, scale)
			want := 1 / math.Sqrt(ToFloat64(int64(v), scale))
			if e := testutil.RelErr(invSqrtFloat(m, s), want); e >= 1e-4 {
				t.Fatalf("InvSqrt(%d, %d): rel err %.3g", v, scale, e)
			}
		}
	}
}

func TestInvSqrtOddScale(t *testing.T) {
	// Dropping one input bit costs a little precision for odd scales.
	inputs := sweep.Geometric(1<<16, math.MaxUint32, 8)
	for _, scale := range []int{-7, 1, 15, 31} {
		for _, v := range inputs {
			m, s := InvSqrt(v, scale)
			want := 1 / math.Sqrt(ToFloat64(int64(v), scale))
			if e := testutil.RelErr(invSqrtFloat(m, s), want); e >= 1.1e-4 {
				t.Fatalf("InvSqrt(%d, %d): rel err %.3g", v, scale, e)
			}
		}
	}
}

func TestInvSqrtMantissaFitsInt32(t *testing.T) {
	for _, v := range sweep.Geometric(1, math.MaxUint32, 6) {
		for iters := 0; iters <= 2; iters++ {
			m, _ := InvSqrtN(v, 0, iters)
			if m < 1<<29 || m > 1<<30 {
				t.Fatalf("InvSqrtN(%d, 0, %d) mantissa %#x outside [2^29, 2^30]", v, iters, m)
			}
		}
	}
}

func TestInvSqrtMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, v := range sweep.Geometric(1, math.MaxUint32, 10) {
		m, s := InvSqrt(v, 16)
		got := invSqrtFloat(m, s)
		if got >= prev {
			t.Fatalf("InvSqrt(%d, 16) = %v not below previous %v", v, got, prev)
		}
		prev = got
	}
}

func TestInvSqrtRoundTrip(t *testing.T) {
	// Squaring 1/sqrt(v) with Mul must give 1/v.
	for _, scale := range []int{0, 16, 30} {
		for _, v := range sweep.Geometric(256, math.MaxUint32, 6) {
			m, s := InvSqrt(v, scale)
			sq := Mul(int32(m), int32(m), 32)
			got := ToFloat64(int64(sq), 2*s-32)
			want := math.Ldexp(1, scale) / float64(v)
			if e := testutil.RelErr(got, want); e >= 2.5e-4 {
				t.Fatalf("scale=%d v=%d: round trip rel err %.3g", scale, v, e)
			}
		}
	}
}

func BenchmarkInvSqrt(b *testing.B) {
	var acc uint32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, _ := InvSqrt(uint32(i)|1, 16)
		acc += m
	}
	_ = acc
}
