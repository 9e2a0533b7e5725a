package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/bench"
	"github.com/cwbudde/algo-dynemit/internal/logging"
)

type benchFlags struct {
	csv        bool
	autoDetect bool
	forceLevel string
	sizes      []int
	trials     int
	warmup     int
}

func newBenchCommand(a *app) *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the dispatched float32 multiply",
		Long: `Benchmark the dispatched float32 multiply over a range of array sizes.

Each size is warmed up, then timed over several trials. Results report
median, mean, standard deviation, min, max and p99 milliseconds per call and
GFLOP/s from the median.`,
		Example: `  dynemit bench                      # human-readable output
  dynemit bench --csv > out.csv      # CSV to stdout
  dynemit bench --auto-detect        # CSV to <output_dir>/results_<cpu>_<simd>.csv
  dynemit bench --force-level sse2   # benchmark the SSE2 variant`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runBench(ctx, cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.csv, "csv", false, "write CSV to stdout")
	fl.BoolVar(&f.autoDetect, "auto-detect", false, "write CSV to an auto-named file in bench.output_dir")
	fl.StringVar(&f.forceLevel, "force-level", "", "benchmark the variant of this level (scalar, sse2, sse4.2, avx, avx2, avx512f)")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "array sizes (overrides bench.sizes)")
	fl.IntVar(&f.trials, "trials", 0, "trials per size (overrides bench.trials)")
	fl.IntVar(&f.warmup, "warmup", -1, "warm-up calls per size (overrides bench.warmup)")
	return cmd
}

func (a *app) runBench(ctx context.Context, cmd *cobra.Command, f benchFlags) (err error) {
	log := logging.WithComponent("bench")
	detected := cpu.DetectLevel()

	opts := bench.Options{
		Sizes:  a.cfg.Bench.Sizes,
		Trials: a.cfg.Bench.Trials,
		Warmup: a.cfg.Bench.Warmup,
		Level:  detected,
	}
	if len(f.sizes) > 0 {
		opts.Sizes = f.sizes
	}
	if f.trials > 0 {
		opts.Trials = f.trials
	}
	if f.warmup >= 0 {
		opts.Warmup = f.warmup
	}

	kernel := bench.DispatchedKernel()
	if f.forceLevel != "" {
		level, err := cpu.ParseLevel(f.forceLevel)
		if err != nil {
			return err
		}
		kernel, err = bench.ForcedKernel(level, detected)
		if err != nil {
			return err
		}
		opts.Level = level
		opts.Forced = true
	}

	out := cmd.OutOrStdout()
	var sink bench.Sink
	switch {
	case f.autoDetect:
		file, path, cerr := createResultFile(a.cfg.Bench.OutputDir, opts.Level)
		if cerr != nil {
			return cerr
		}
		stderr := cmd.ErrOrStderr()
		defer finishResultFile(file, path, stderr, &err)

		fmt.Fprintf(stderr, "Auto-detected CPU and SIMD level\n")
		fmt.Fprintf(stderr, "SIMD level: %s\n", opts.Level)
		fmt.Fprintf(stderr, "Writing results to: %s\n", path)

		sink = bench.NewCSVSink(file)
	case f.csv:
		sink = bench.NewCSVSink(out)
	default:
		sink = bench.NewTextSink(out)
	}

	log.WithField("simd_level", opts.Level.String()).
		WithField("sizes", len(opts.Sizes)).
		Info("starting benchmark")

	return bench.NewRunner(kernel, opts).Run(ctx, sink)
}

// finishResultFile closes a result file and reports the outcome. A close
// failure becomes the command's error unless the run already failed.
func finishResultFile(file io.Closer, path string, w io.Writer, errp *error) {
	if cerr := file.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("closing %q: %w", path, cerr)
	}
	if *errp == nil {
		fmt.Fprintf(w, "Benchmark complete! Results saved to: %s\n", path)
	}
}

func createResultFile(dir string, level cpu.SIMDLevel) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating output directory: %w", err)
	}
	path := bench.AutoFilename(dir, cpu.BrandName(), level)
	file, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not create file %q: %w", path, err)
	}
	return file, path, nil
}
