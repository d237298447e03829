//go:build !amd64 && !arm64 && !riscv64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// Returns a Features struct with HasBitScan set to false,
// indicating only the portable backend should be used.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
