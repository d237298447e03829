package fix32

import (
	"sync"

	archregistry "github.com/cwbudde/algo-fix32/fix32/internal/arch/registry"
	"github.com/cwbudde/algo-fix32/internal/cpu"
)

var (
	bitScanner     archregistry.Scanner
	bitScannerName string
	bitScanOnce    sync.Once
)

func initBitScanner() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("fix32: no bit-scan backend registered (missing generic fallback?)")
	}

	if entry.Scanner == nil {
		panic("fix32: selected bit-scan backend has no Scanner")
	}

	bitScanner = entry.Scanner
	bitScannerName = entry.Name
}

// msbEven returns the highest set bit index of v rounded down to even.
func msbEven(v uint32) int {
	bitScanOnce.Do(initBitScanner)
	return bitScanner.MSBEven(v)
}

// BackendName reports the bit-scan backend selected for this process
// ("generic" or "intrinsic").
func BackendName() string {
	bitScanOnce.Do(initBitScanner)
	return bitScannerName
}
