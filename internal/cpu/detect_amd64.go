//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// BSR is part of the x86-64 baseline, so a bit scan is always available.
// Uses golang.org/x/sys/cpu for the optional LZCNT (BMI1 generation) flag.
func detectFeaturesImpl() Features {
	return Features{
		HasBitScan:   true,
		HasLZCNT:     cpu.X86.HasBMI1,
		Architecture: runtime.GOARCH,
	}
}
