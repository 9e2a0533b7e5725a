package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath/registry"
)

func TestSelfCheckPasses(t *testing.T) {
	results := SelfCheck(cpu.DetectLevel())
	require.NotEmpty(t, results)

	variants := map[string]bool{}
	for _, r := range results {
		variants[r.Variant] = true
		assert.True(t, r.OK, "%s/%s: index %d got %v want %v", r.Variant, r.Op, r.Index, r.Got, r.Want)
	}
	assert.True(t, variants[DispatchedVariant])
	assert.True(t, variants["generic"])
}

func TestSelfCheckScalarOnlyRunsGeneric(t *testing.T) {
	for _, r := range SelfCheck(cpu.SIMDScalar) {
		assert.Contains(t, []string{DispatchedVariant, "generic"}, r.Variant)
	}
}

func TestCheckEntryReportsMismatch(t *testing.T) {
	broken := registry.OpEntry{
		Name: "broken",
		AddF32: func(dst, a, b []float32) {
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
			dst[3] = 0
		},
	}

	results := checkEntry(&broken)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK)
	assert.Equal(t, 3, results[0].Index)
	assert.Equal(t, 7.0, results[0].Want)
	assert.Equal(t, "vector_add_f32", results[0].Op)
}
