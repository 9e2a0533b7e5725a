//go:build amd64 && !purego

package vecmath

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/amd64/avx"
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/amd64/avx512"
	_ "github.com/cwbudde/algo-dynemit/internal/vecmath/arch/amd64/sse2"
)
