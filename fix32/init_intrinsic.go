//go:build !purego

package fix32

import (
	_ "github.com/cwbudde/algo-fix32/fix32/internal/arch/generic"   // register portable backend
	_ "github.com/cwbudde/algo-fix32/fix32/internal/arch/intrinsic" // register count-leading-zeros backend
	_ "github.com/cwbudde/algo-fix32/fix32/internal/arch/registry"  // initialize backend registry
)
