//go:build riscv64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on riscv64 systems.
//
// CLZ/CLZW belong to the Zbb extension, which is optional on RV64GC.
func detectFeaturesImpl() Features {
	return Features{
		HasBitScan:   cpu.RISCV64.HasZbb,
		Architecture: runtime.GOARCH,
	}
}
