//go:build !purego

package intrinsic

import (
	"github.com/cwbudde/algo-fix32/fix32/internal/arch/registry"
	"github.com/cwbudde/algo-fix32/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "intrinsic",
		Level:    cpu.LevelBitScan,
		Priority: 10,
		Scanner:  CLZ{},
	})
}
