package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-dynemit/cpu"
)

// CSVHeader is the column layout of CSV output.
var CSVHeader = []string{
	"array_size", "median_ms", "mean_ms", "stddev_ms",
	"min_ms", "max_ms", "p99_ms", "gflops", "simd_level",
}

// CSVSink writes one row per size.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink returns a sink writing CSV to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) Begin(cpu.SIMDLevel, bool) error {
	return s.w.Write(CSVHeader)
}

func (s *CSVSink) Result(r Result) error {
	ms := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return s.w.Write([]string{
		strconv.Itoa(r.Size),
		ms(r.Timing.Median),
		ms(r.Timing.Mean),
		ms(r.Timing.StdDev),
		ms(r.Timing.Min),
		ms(r.Timing.Max),
		ms(r.Timing.P99),
		strconv.FormatFloat(r.GFLOPS, 'f', 4, 64),
		r.Level.String(),
	})
}

func (s *CSVSink) End() error {
	s.w.Flush()
	return s.w.Error()
}

const rule = "==========================================="

// TextSink writes a human-readable report including the correctness check.
type TextSink struct {
	w   io.Writer
	err error
}

// NewTextSink returns a sink writing plain text to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *TextSink) Begin(level cpu.SIMDLevel, forced bool) error {
	s.printf("%s\nVector Multiply Benchmark\n%s\n", rule, rule)
	if forced {
		s.printf("Forced SIMD level: %s\n", level)
	} else {
		s.printf("Detected SIMD level: %s\n", level)
	}
	return s.err
}

func (s *TextSink) Result(r Result) error {
	s.printf("\n--- Benchmarking size: %d elements ---\n", r.Size)
	for _, m := range r.Mismatches {
		s.printf("mismatch at %d: got %f, expect %f\n", m.Index, m.Got, m.Want)
	}
	if r.Correct() && r.Checked >= checkLen {
		s.printf("  correctness: OK\n")
	}
	s.printf("  n = %d, iters = %d, trials = %d\n", r.Size, r.Iterations, r.Trials)
	s.printf("  median = %.6f ms, mean = %.6f ms\n", r.Timing.Median, r.Timing.Mean)
	s.printf("  stddev = %.6f ms, min = %.6f ms, max = %.6f ms\n", r.Timing.StdDev, r.Timing.Min, r.Timing.Max)
	s.printf("  p99 = %.6f ms\n", r.Timing.P99)
	s.printf("  GFLOP/s = %.4f (based on median)\n", r.GFLOPS)
	return s.err
}

func (s *TextSink) End() error {
	s.printf("\n%s\nBenchmark complete!\n%s\n", rule, rule)
	return s.err
}
