// Package registry provides the backend registry for the fix32 bit scan.
//
// InvSqrt needs the index of the highest set bit of its operand, rounded down
// to an even position. Several backends may provide it (portable mask
// reduction, count-leading-zeros intrinsics); each registers itself from an
// init() function and fix32 selects the best one for the running CPU.
//
// Every backend must return identical results for every input: callers may
// mix platforms or build tags and still expect bit-exact outputs.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fix32/internal/cpu"
)

// Scanner locates the highest set bit of a 32-bit word.
type Scanner interface {
	// MSBEven returns the index of the highest set bit of v rounded down to
	// an even position, so that v = a * 2^MSBEven(v) with 1 <= a < 4.
	// It returns 0 for v < 4, including v == 0.
	MSBEven(v uint32) int
}

// OpEntry is one registered bit-scan backend.
type OpEntry struct {
	Name     string
	Level    cpu.Level
	Priority int
	Scanner  Scanner
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default bit-scan backend registry.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
