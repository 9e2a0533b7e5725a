//go:build amd64 && !purego

package avx512

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// init registers the AVX-512 implementations with the vecmath registry.
//
// Only the float32 kernels are provided; MulF64 falls through to AVX2.
//
// Priority: 30 (highest)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512F,
		Priority:  30,

		AddF32: AddF32,
		SubF32: SubF32,
		MulF32: MulF32,
	})
}
