// Package cpu provides CPU capability detection for kernel selection.
//
// The running processor is classified into one SIMDLevel. Levels form a strict
// total order on x86: every level implies the capabilities of all lower ones.
// Other architectures always classify as SIMDScalar.
//
// Probe measures the hardware on every call. DetectLevel memoizes the result for
// the whole process through a lock-free Detector, so dispatch decisions taken by
// different goroutines always agree.
package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher values are supersets of lower values on the same architecture.
type SIMDLevel int

const (
	// SIMDScalar indicates no SIMD optimization (pure Go fallback).
	SIMDScalar SIMDLevel = iota

	// SIMDSSE2 indicates x86 SSE2 (128-bit).
	SIMDSSE2

	// SIMDSSE42 indicates x86 SSE4.2 (128-bit).
	SIMDSSE42

	// SIMDAVX indicates x86 AVX (256-bit float) with OS-enabled YMM state.
	SIMDAVX

	// SIMDAVX2 indicates x86 AVX2 (256-bit integer and float) with OS-enabled YMM state.
	SIMDAVX2

	// SIMDAVX512F indicates x86 AVX-512 Foundation with OS-enabled ZMM state.
	SIMDAVX512F
)

// MaxLevel is the strongest level this package knows about.
const MaxLevel = SIMDAVX512F

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("cpu: unknown SIMD level")

// String returns a human-readable name for the SIMD level.
// Names are for logs and reports only.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDScalar:
		return "Scalar"
	case SIMDSSE2:
		return "SSE2"
	case SIMDSSE42:
		return "SSE4.2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512F:
		return "AVX-512F"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined levels.
func (s SIMDLevel) Valid() bool {
	return s >= SIMDScalar && s <= MaxLevel
}

// Levels returns every defined level from weakest to strongest.
func Levels() []SIMDLevel {
	levels := make([]SIMDLevel, 0, MaxLevel+1)
	for l := SIMDScalar; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}

// ParseLevel converts a level name into a SIMDLevel. Matching is
// case-insensitive and accepts both the display names ("SSE4.2", "AVX-512F")
// and the command line spellings ("sse4.2", "avx512f").
func ParseLevel(name string) (SIMDLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "none", "generic":
		return SIMDScalar, nil
	case "sse2":
		return SIMDSSE2, nil
	case "sse4.2", "sse42":
		return SIMDSSE42, nil
	case "avx":
		return SIMDAVX, nil
	case "avx2":
		return SIMDAVX2, nil
	case "avx512f", "avx-512f", "avx512":
		return SIMDAVX512F, nil
	}
	return SIMDScalar, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Supports reports whether a machine classified as detected can execute code
// that requires the required level.
func Supports(detected, required SIMDLevel) bool {
	if !detected.Valid() || !required.Valid() {
		return false
	}
	return required <= detected
}
