//go:build !amd64 || purego

package vecmath

// This file imports the generic implementation package for architectures
// without SIMD variants and for purego builds.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/generic"
)
