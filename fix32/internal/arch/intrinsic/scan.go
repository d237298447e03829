// Package intrinsic provides a bit scan built on math/bits, which the
// compiler lowers to BSR/LZCNT (amd64), CLZ (arm64) or CLZW (riscv64 Zbb).
package intrinsic

import "math/bits"

// CLZ derives the even highest-bit index from a count-leading-zeros.
type CLZ struct{}

// MSBEven implements registry.Scanner.
func (CLZ) MSBEven(v uint32) int {
	n := bits.Len32(v) - 1
	if n < 0 {
		return 0
	}
	return n &^ 1
}
