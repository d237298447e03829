package intrinsic

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fix32/fix32/internal/arch/generic"
)

func TestCLZMatchesPortable(t *testing.T) {
	var (
		clz CLZ
		ref generic.Portable
	)

	check := func(v uint32) {
		if got, want := clz.MSBEven(v), ref.MSBEven(v); got != want {
			t.Fatalf("MSBEven(%#x) = %d, portable = %d", v, got, want)
		}
	}

	for v := uint32(0); v < 1<<16; v++ {
		check(v)
	}

	for bit := 0; bit < 32; bit++ {
		p := uint32(1) << bit
		check(p - 1)
		check(p)
		check(p + 1)
		check(p | (p - 1))
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1_000_000; i++ {
		check(rng.Uint32())
	}
}

func BenchmarkCLZ(b *testing.B) {
	var s CLZ
	acc := 0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc += s.MSBEven(uint32(i) | 1)
	}
	_ = acc
}
