//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// init registers the AVX2 implementations with the vecmath registry.
//
// AVX2 provides 256-bit SIMD operations. Available on Intel Haswell (2013+)
// and AMD Excavator (2015+).
//
// Priority: 20 (high - preferred over AVX, SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		AddF32: AddF32,
		SubF32: SubF32,
		MulF32: MulF32,
		MulF64: MulF64,
	})
}
