// Package sample summarizes repeated timing measurements.
package sample

import (
	"math"
	"sort"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N        int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Median   float64
	P99      float64
}

// Calculate computes all statistics of values. Mean and variance use Welford's
// online algorithm. An empty sample yields a zero Summary with NaN order
// statistics.
func Calculate(values []float64) Summary {
	var acc Accumulator
	acc.Update(values...)
	s := acc.Result()
	s.Median = Median(values)
	s.P99 = Percentile(values, 0.99)
	return s
}

// Accumulator computes running moments and extremes without keeping the
// values. The zero value is ready to use.
type Accumulator struct {
	n      int
	mean   float64
	m2     float64
	minVal float64
	minPos int
	maxVal float64
	maxPos int
}

// Update adds values to the running statistics.
func (a *Accumulator) Update(values ...float64) {
	for _, x := range values {
		if a.n == 0 {
			a.minVal, a.maxVal = x, x
			a.minPos, a.maxPos = 0, 0
		} else {
			if x < a.minVal {
				a.minVal = x
				a.minPos = a.n
			}
			if x > a.maxVal {
				a.maxVal = x
				a.maxPos = a.n
			}
		}

		a.n++
		delta := x - a.mean
		a.mean += delta / float64(a.n)
		a.m2 += delta * (x - a.mean)
	}
}

// Len returns the number of values seen.
func (a *Accumulator) Len() int {
	return a.n
}

// Result returns the statistics gathered so far. Median and P99 need the full
// sample and are left NaN; use Calculate for them.
func (a *Accumulator) Result() Summary {
	if a.n == 0 {
		return Summary{Median: math.NaN(), P99: math.NaN()}
	}
	variance := a.m2 / float64(a.n)
	return Summary{
		N:        a.n,
		Mean:     a.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      a.minVal,
		MinPos:   a.minPos,
		Max:      a.maxVal,
		MaxPos:   a.maxPos,
		Median:   math.NaN(),
		P99:      math.NaN(),
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Median returns the middle value of values, averaging the two middle values
// for an even count. It returns NaN for an empty slice. values is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := sortedCopy(values)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the p-quantile (p in [0, 1]) using linear interpolation
// between the closest ranks. p is clamped to [0, 1]. It returns NaN for an
// empty slice.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	p = math.Min(math.Max(p, 0), 1)
	sorted := sortedCopy(values)

	index := p * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
