//go:build !purego && amd64

// Package avx2 provides the AVX2 tier kernels.
//
// The float32 kernels delegate to vek32, whose amd64 build carries AVX2
// assembly. MulF64 delegates to algo-vecmath.
//
// vek32's *_Into kernels reject a destination that overlaps an input, so a dst
// that is one of the inputs goes through the *_Inplace kernels instead.
package avx2

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek/vek32"
)

// AddF32 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case same(dst, a) && same(dst, b):
		scalar(dst, a, b, func(x, y float32) float32 { return x + y })
	case same(dst, a):
		vek32.Add_Inplace(dst, b)
	case same(dst, b):
		vek32.Add_Inplace(dst, a)
	default:
		vek32.Add_Into(dst, a, b)
	}
}

// SubF32 performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
func SubF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case same(dst, a) && same(dst, b):
		scalar(dst, a, b, func(x, y float32) float32 { return x - y })
	case same(dst, a):
		vek32.Sub_Inplace(dst, b)
	case same(dst, b):
		// a-b == -(b-a) under round-to-nearest, up to the sign of a zero result.
		vek32.Sub_Inplace(dst, a)
		vek32.Neg_Inplace(dst)
	default:
		vek32.Sub_Into(dst, a, b)
	}
}

// MulF32 performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	switch {
	case same(dst, a) && same(dst, b):
		scalar(dst, a, b, func(x, y float32) float32 { return x * y })
	case same(dst, a):
		vek32.Mul_Inplace(dst, b)
	case same(dst, b):
		vek32.Mul_Inplace(dst, a)
	default:
		vek32.Mul_Into(dst, a, b)
	}
}

// MulF64 performs element-wise multiplication on float64 slices.
// Slices must have equal length. Panics if lengths differ.
func MulF64(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.MulBlock(dst, a, b)
}

// same reports whether x and y start at the same element. Callers have
// already checked that the lengths agree and are non-zero.
func same(x, y []float32) bool {
	return &x[0] == &y[0]
}

// scalar handles dst, a and b all being the same slice.
func scalar(dst, a, b []float32, op func(x, y float32) float32) {
	for i := range dst {
		dst[i] = op(a[i], b[i])
	}
}
