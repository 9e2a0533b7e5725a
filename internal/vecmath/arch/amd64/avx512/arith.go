//go:build !purego && amd64

// Package avx512 provides 512-bit float32 kernels using AVX-512F.
package avx512

// AddF32 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddF32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	addF32AVX512(dst, a, b)
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
	subF32AVX512(dst, a, b)
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
	mulF32AVX512(dst, a, b)
}

// Assembly function declarations (implemented in arith_amd64.s)

//go:noescape
func addF32AVX512(dst, a, b []float32)

//go:noescape
func subF32AVX512(dst, a, b []float32)

//go:noescape
func mulF32AVX512(dst, a, b []float32)
