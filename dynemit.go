// Package dynemit runs element-wise vector operations on the fastest code
// path the CPU supports.
//
// Callers use one entry point per operation. The first call detects the
// processor's SIMD level, picks the matching implementation and binds it
// permanently; later calls go straight to that implementation.
//
//	dst := make([]float32, len(a))
//	dynemit.AddF32(dst, a, b)
//
// Detection can be limited for troubleshooting with DYNEMIT_NO_SIMD=1 or
// DYNEMIT_MAX_LEVEL=<level>, read once before the first dispatched call.
package dynemit

import (
	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath"
)

// Operation family names reported by Features.
const (
	FeatureCore         = "core"
	FeatureVectorAdd    = "vector_add"
	FeatureVectorMul    = "vector_mul"
	FeatureVectorSub    = "vector_sub"
	FeatureVectorMulF64 = "vector_mul_f64"
)

var features = []string{
	FeatureCore,
	FeatureVectorAdd,
	FeatureVectorMul,
	FeatureVectorSub,
	FeatureVectorMulF64,
}

// Features lists the operation families built into the library.
// The returned slice is a fresh copy.
func Features() []string {
	out := make([]string, len(features))
	copy(out, features)
	return out
}

// DetectLevel returns the SIMD level of the running CPU. The value is
// computed once per process.
func DetectLevel() cpu.SIMDLevel {
	return cpu.DetectLevel()
}

// LevelName returns a display name for level, "Unknown" for invalid values.
func LevelName(level cpu.SIMDLevel) string {
	return level.String()
}

// AddF32 sets dst[i] = a[i] + b[i] for every i.
//
// All three slices must have the same length; a mismatch panics. Zero length
// is a no-op. dst may be the same slice as a or b, but must not overlap them
// at a different offset.
func AddF32(dst, a, b []float32) {
	vecmath.AddF32(dst, a, b)
}

// SubF32 sets dst[i] = a[i] - b[i]. See AddF32 for the slice rules.
func SubF32(dst, a, b []float32) {
	vecmath.SubF32(dst, a, b)
}

// MulF32 sets dst[i] = a[i] * b[i]. See AddF32 for the slice rules.
func MulF32(dst, a, b []float32) {
	vecmath.MulF32(dst, a, b)
}

// MulF64 sets dst[i] = a[i] * b[i] on float64 slices.
func MulF64(dst, a, b []float64) {
	vecmath.MulF64(dst, a, b)
}

// Init binds every operation now. Programs that care about first-call latency
// call it at startup; calling it is never required.
func Init() {
	vecmath.Bind()
}
