package generic

import (
	"github.com/cwbudde/algo-fix32/fix32/internal/arch/registry"
	"github.com/cwbudde/algo-fix32/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "generic",
		Level:    cpu.LevelNone,
		Priority: 0,
		Scanner:  Portable{},
	})
}
