//go:build purego

package fix32

import (
	_ "github.com/cwbudde/algo-fix32/fix32/internal/arch/generic"
	_ "github.com/cwbudde/algo-fix32/fix32/internal/arch/registry"
)
