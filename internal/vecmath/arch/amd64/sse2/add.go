//go:build !purego && amd64

// Package sse2 provides 128-bit implementations of the float32 kernels.
// SSE2 is part of the x86-64 baseline; the same code serves the SSE4.2 tier.
package sse2

// AddF32 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// Uses SSE instructions to process 4 float32 values at once.
func AddF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addF32SSE(dst, a, b)
}

// SubF32 performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
// Uses SSE instructions to process 4 float32 values at once.
func SubF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	subF32SSE(dst, a, b)
}

// MulF32 performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// Uses SSE instructions to process 4 float32 values at once.
func MulF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	mulF32SSE(dst, a, b)
}

// Assembly function declarations (implemented in arith_amd64.s)

//go:noescape
func addF32SSE(dst, a, b []float32)

//go:noescape
func subF32SSE(dst, a, b []float32)

//go:noescape
func mulF32SSE(dst, a, b []float32)
