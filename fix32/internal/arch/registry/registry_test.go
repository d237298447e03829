package registry

import (
	"testing"

	"github.com/cwbudde/algo-fix32/internal/cpu"
)

type fixedScanner int

func (s fixedScanner) MSBEven(uint32) int { return int(s) }

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", Level: cpu.LevelNone, Priority: 0, Scanner: fixedScanner(0)})
	reg.Register(OpEntry{Name: "intrinsic", Level: cpu.LevelBitScan, Priority: 10, Scanner: fixedScanner(2)})

	entry := reg.Lookup(cpu.Features{HasBitScan: true})
	if entry == nil || entry.Name != "intrinsic" {
		t.Fatalf("expected intrinsic, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic, got %#v", entry)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "intrinsic", Level: cpu.LevelBitScan, Priority: 10})
	reg.Register(OpEntry{Name: "generic", Level: cpu.LevelNone, Priority: 0})

	entry := reg.Lookup(cpu.Features{HasBitScan: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic with ForceGeneric, got %#v", entry)
	}
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{HasBitScan: true}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %#v", entry)
	}
}

func TestRegistryListAndReset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic"})

	entries := reg.ListEntries()
	if len(entries) != 1 || entries[0].Name != "generic" {
		t.Fatalf("unexpected entries %#v", entries)
	}

	entries[0].Name = "mutated"
	if reg.ListEntries()[0].Name != "generic" {
		t.Fatal("ListEntries must return a copy")
	}

	reg.Reset()
	if len(reg.ListEntries()) != 0 {
		t.Fatal("Reset did not clear entries")
	}
}
