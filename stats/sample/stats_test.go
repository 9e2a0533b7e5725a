package sample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dynemit/internal/testutil"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculate(t *testing.T) {
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if s.N != 8 {
		t.Errorf("N = %d, want 8", s.N)
	}
	if !almostEqual(s.Mean, 5, tolerance) {
		t.Errorf("Mean = %v, want 5", s.Mean)
	}
	if !almostEqual(s.Variance, 4, tolerance) {
		t.Errorf("Variance = %v, want 4", s.Variance)
	}
	if !almostEqual(s.StdDev, 2, tolerance) {
		t.Errorf("StdDev = %v, want 2", s.StdDev)
	}
	if s.Min != 2 || s.MinPos != 0 {
		t.Errorf("Min = %v@%d, want 2@0", s.Min, s.MinPos)
	}
	if s.Max != 9 || s.MaxPos != 7 {
		t.Errorf("Max = %v@%d, want 9@7", s.Max, s.MaxPos)
	}
	if !almostEqual(s.Median, 4.5, tolerance) {
		t.Errorf("Median = %v, want 4.5", s.Median)
	}
	if !almostEqual(s.P99, 8.86, 1e-9) {
		t.Errorf("P99 = %v, want 8.86", s.P99)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.N != 0 || s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("unexpected summary for empty input: %+v", s)
	}
	if !math.IsNaN(s.Median) || !math.IsNaN(s.P99) {
		t.Errorf("order statistics should be NaN, got median=%v p99=%v", s.Median, s.P99)
	}
}

func TestCalculateSingle(t *testing.T) {
	s := Calculate([]float64{3.5})
	if s.Mean != 3.5 || s.Median != 3.5 || s.P99 != 3.5 || s.StdDev != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); !almostEqual(got, tt.want, tolerance) {
				t.Errorf("Median = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input modified: %v", values)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.9, 46},
		{0.99, 49.6},
		{1, 50},
		{-1, 10},
		{2, 50},
	}

	for _, tt := range tests {
		if got := Percentile(values, tt.p); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestAccumulatorMatchesCalculate(t *testing.T) {
	values := []float64{0.7, 1.3, 0.9, 2.2, 1.1, 0.8}

	var acc Accumulator
	for _, v := range values {
		acc.Update(v)
	}
	got := acc.Result()
	want := Calculate(values)

	if acc.Len() != len(values) {
		t.Errorf("Len = %d, want %d", acc.Len(), len(values))
	}
	if !almostEqual(got.Mean, want.Mean, tolerance) || !almostEqual(got.Variance, want.Variance, tolerance) {
		t.Errorf("streaming mean/var %v/%v, batch %v/%v", got.Mean, got.Variance, want.Mean, want.Variance)
	}
	if got.Min != want.Min || got.Max != want.Max || got.MaxPos != want.MaxPos {
		t.Errorf("streaming extremes differ: %+v vs %+v", got, want)
	}

	acc.Reset()
	if acc.Len() != 0 {
		t.Errorf("Len after Reset = %d", acc.Len())
	}
}

func summaryMoments(s Summary) []float64 {
	return []float64{s.Mean, s.Variance, s.StdDev, s.Min, s.Max}
}

func TestAccumulatorChunkedUpdate(t *testing.T) {
	values := testutil.DeterministicNoise[float64](7, 50, 257)

	var acc Accumulator
	for i := 0; i < len(values); i += 32 {
		acc.Update(values[i:min(i+32, len(values))]...)
	}

	got := summaryMoments(acc.Result())
	testutil.RequireFinite(t, got)
	testutil.RequireSliceNearlyEqual(t, got, summaryMoments(Calculate(values)), 1e-9)
}
