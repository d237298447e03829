//go:build arm64

package cpu

import (
	"runtime"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// CLZ is part of the ARMv8 base instruction set, so it is always present.
func detectFeaturesImpl() Features {
	return Features{
		HasBitScan:   true,
		Architecture: runtime.GOARCH,
	}
}
