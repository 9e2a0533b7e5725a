// Package bench measures the dispatched float32 multiply across array sizes.
//
// For every size the runner warms the kernel up, times a number of trials of
// repeated calls and reports the per-call time statistics and throughput.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/logging"
	"github.com/cwbudde/algo-dynemit/stats/sample"
)

const (
	DefaultTrials = 10
	DefaultWarmup = 10

	// checkLen is the number of leading elements verified after each size.
	checkLen = 16
)

// DefaultSizes spans 512 elements to 4M, dense at the small end where cache
// effects dominate.
var DefaultSizes = []int{
	512, 1024, 2048, 4096, 8192, 12288, 16384, 20480, 24576, 28672,
	32768, 40960, 49152, 57344, 65536, 81920, 98304, 114688, 131072, 163840,
	196608, 229376, 262144, 327680, 393216, 458752, 524288, 655360, 786432, 917504,
	1048576, 1310720, 1572864, 1835008, 2097152, 2621440, 3145728, 3670016, 4194304,
}

// Iterations returns how many kernel calls one trial makes for n elements.
func Iterations(n int) int {
	switch {
	case n < 100_000:
		return 5000
	case n < 2_000_000:
		return 2000
	case n < 5_000_000:
		return 1000
	default:
		return 500
	}
}

// Kernel is the benchmarked operation shape.
type Kernel func(dst, a, b []float32)

// Options configures a Runner. Zero fields take the defaults.
type Options struct {
	Sizes  []int
	Trials int
	Warmup int

	// Iterations overrides the per-size call count.
	Iterations func(n int) int

	// Level is reported with every result.
	Level cpu.SIMDLevel

	// Forced marks a run whose level was chosen by the caller.
	Forced bool
}

func (o Options) withDefaults() Options {
	if len(o.Sizes) == 0 {
		o.Sizes = DefaultSizes
	}
	if o.Trials <= 0 {
		o.Trials = DefaultTrials
	}
	if o.Warmup < 0 {
		o.Warmup = 0
	}
	if o.Iterations == nil {
		o.Iterations = Iterations
	}
	return o
}

// Mismatch is a verified element that differs from the scalar product.
type Mismatch struct {
	Index int
	Got   float32
	Want  float32
}

// Result holds the measurements for one array size.
type Result struct {
	Size       int
	Iterations int
	Trials     int
	Level      cpu.SIMDLevel

	// Timing summarizes milliseconds per kernel call across trials.
	Timing sample.Summary

	// GFLOPS is derived from the median time.
	GFLOPS float64

	// Checked is the number of leading elements verified.
	Checked    int
	Mismatches []Mismatch
}

// Correct reports whether every checked element matched.
func (r Result) Correct() bool {
	return len(r.Mismatches) == 0
}

// Sink receives the results of a run in order.
type Sink interface {
	Begin(level cpu.SIMDLevel, forced bool) error
	Result(r Result) error
	End() error
}

// Runner executes a benchmark plan against one kernel.
type Runner struct {
	opts   Options
	kernel Kernel
	log    *logrus.Entry
}

// NewRunner returns a runner for kernel.
func NewRunner(kernel Kernel, opts Options) *Runner {
	return &Runner{
		opts:   opts.withDefaults(),
		kernel: kernel,
		log:    logging.WithComponent("bench"),
	}
}

// Run benchmarks every configured size and streams results to sink. It stops
// early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, sink Sink) error {
	if r.kernel == nil {
		return errors.New("bench: nil kernel")
	}
	if err := sink.Begin(r.opts.Level, r.opts.Forced); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, n := range r.opts.Sizes {
		res, err := r.RunSize(ctx, n)
		if err != nil {
			return err
		}
		if err := sink.Result(res); err != nil {
			return fmt.Errorf("writing result for n=%d: %w", n, err)
		}
	}

	if err := sink.End(); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return nil
}

// RunSize benchmarks a single array size.
func (r *Runner) RunSize(ctx context.Context, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("bench: invalid size %d", n)
	}

	a := make([]float32, n)
	b := make([]float32, n)
	out := make([]float32, n)
	for i := range a {
		a[i] = float32(i) * 0.5
		b[i] = float32(i)*0.25 + 1
	}

	for w := 0; w < r.opts.Warmup; w++ {
		r.kernel(out, a, b)
	}

	iters := r.opts.Iterations(n)
	times := make([]float64, r.opts.Trials)
	for trial := range times {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("bench cancelled at n=%d: %w", n, err)
		}
		start := time.Now()
		for i := 0; i < iters; i++ {
			r.kernel(out, a, b)
		}
		elapsed := time.Since(start)
		times[trial] = float64(elapsed.Nanoseconds()) / 1e6 / float64(iters)
	}

	res := Result{
		Size:       n,
		Iterations: iters,
		Trials:     r.opts.Trials,
		Level:      r.opts.Level,
		Timing:     sample.Calculate(times),
	}
	res.GFLOPS = gflops(n, res.Timing.Median)
	res.Checked, res.Mismatches = verify(out, a, b)

	r.log.WithFields(logrus.Fields{
		"size":      n,
		"median_ms": res.Timing.Median,
		"gflops":    res.GFLOPS,
	}).Debug("size benchmarked")

	return res, nil
}

// gflops converts a median per-call time into billions of multiplies per
// second: one multiply per element.
func gflops(n int, medianMS float64) float64 {
	if medianMS <= 0 {
		return 0
	}
	return float64(n) / (medianMS / 1000) / 1e9
}

func verify(out, a, b []float32) (int, []Mismatch) {
	n := min(checkLen, len(out))
	var bad []Mismatch
	for i := 0; i < n; i++ {
		if want := a[i] * b[i]; out[i] != want {
			bad = append(bad, Mismatch{Index: i, Got: out[i], Want: want})
		}
	}
	return n, bad
}
