// Package cpu provides CPU feature detection for bit-scan backend selection.
//
// This package detects whether the processor offers a single-instruction
// bit scan (BSR/LZCNT on amd64, CLZ on arm64, Zbb on riscv64) that the Go
// compiler lowers math/bits to, and caches the result for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// Level represents the kind of bit-scan support a backend requires.
type Level int

const (
	// LevelNone indicates no hardware requirement (portable Go).
	LevelNone Level = iota

	// LevelBitScan indicates a native count-leading-zeros / bit-scan instruction.
	LevelBitScan
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelBitScan:
		return "BitScan"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to bit-scan backend selection.
type Features struct {
	// HasBitScan reports a native instruction math/bits.Len32 compiles to.
	HasBitScan bool

	// HasLZCNT reports the amd64 LZCNT instruction (shipped with BMI1).
	// Informational; BSR already satisfies HasBitScan on amd64.
	HasLZCNT bool

	// Control flags
	ForceGeneric bool // Disable all specialised backends (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasBitScan returns true if the CPU has a native bit-scan instruction.
func HasBitScan() bool {
	return DetectFeatures().HasBitScan
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features satisfy the specified level.
// This function is used by the bit-scan registry to determine backend compatibility.
func Supports(features Features, level Level) bool {
	if features.ForceGeneric {
		return level == LevelNone
	}

	switch level {
	case LevelNone:
		return true
	case LevelBitScan:
		return features.HasBitScan
	default:
		return false
	}
}
