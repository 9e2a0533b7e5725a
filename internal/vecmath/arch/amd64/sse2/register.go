//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// init registers the SSE2 implementations with the vecmath registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline.
// SSE4.2 adds nothing these kernels use, so the SSE4.2 tier resolves here too.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		AddF32: AddF32,
		SubF32: SubF32,
		MulF32: MulF32,
	})
}
