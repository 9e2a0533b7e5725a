//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

// init registers the AVX implementations with the vecmath registry.
//
// Priority: 15 (preferred over SSE2, lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,

		AddF32: AddF32,
		SubF32: SubF32,
		MulF32: MulF32,
	})
}
