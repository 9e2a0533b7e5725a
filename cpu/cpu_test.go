package cpu

import (
	"errors"
	"testing"
)

func TestSIMDLevelString(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDScalar, "Scalar"},
		{SIMDSSE2, "SSE2"},
		{SIMDSSE42, "SSE4.2"},
		{SIMDAVX, "AVX"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512F, "AVX-512F"},
		{SIMDLevel(-1), "Unknown"},
		{SIMDLevel(6), "Unknown"},
		{SIMDLevel(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestLevelsOrdered(t *testing.T) {
	levels := Levels()
	if len(levels) != 6 {
		t.Fatalf("expected 6 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("levels not strictly increasing at %d: %v <= %v", i, levels[i], levels[i-1])
		}
	}
	if levels[0] != SIMDScalar || levels[len(levels)-1] != MaxLevel {
		t.Errorf("unexpected bounds %v..%v", levels[0], levels[len(levels)-1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want SIMDLevel
	}{
		{"scalar", SIMDScalar},
		{"sse2", SIMDSSE2},
		{"sse4.2", SIMDSSE42},
		{"SSE4.2", SIMDSSE42},
		{"avx", SIMDAVX},
		{"avx2", SIMDAVX2},
		{"avx512f", SIMDAVX512F},
		{"AVX-512F", SIMDAVX512F},
		{" AVX2 ", SIMDAVX2},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Every display name round-trips.
	for _, l := range Levels() {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", l.String(), got, err, l)
		}
	}

	if _, err := ParseLevel("neon"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(neon) error = %v, want ErrUnknownLevel", err)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		detected, required SIMDLevel
		want               bool
	}{
		{SIMDScalar, SIMDScalar, true},
		{SIMDScalar, SIMDSSE2, false},
		{SIMDSSE42, SIMDSSE2, true},
		{SIMDAVX, SIMDAVX2, false},
		{SIMDAVX512F, SIMDAVX2, true},
		{SIMDAVX512F, SIMDAVX512F, true},
		{SIMDLevel(7), SIMDScalar, false},
		{SIMDAVX2, SIMDLevel(-1), false},
	}
	for _, tt := range tests {
		if got := Supports(tt.detected, tt.required); got != tt.want {
			t.Errorf("Supports(%v, %v) = %v, want %v", tt.detected, tt.required, got, tt.want)
		}
	}
}
