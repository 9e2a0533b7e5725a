package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynemit/internal/config"
	"github.com/cwbudde/algo-dynemit/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	cfg       *config.Config
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dynemit",
		Short: "Runtime SIMD detection and dispatch diagnostics",
		Long: `dynemit classifies the running CPU into a SIMD tier (Scalar, SSE2,
SSE4.2, AVX, AVX2, AVX-512F), shows which kernel variant each dispatched
operation binds to, verifies every variant the CPU can execute and benchmarks
the dispatched float32 multiply.

DYNEMIT_NO_SIMD=1 and DYNEMIT_MAX_LEVEL=<level> limit the detected tier.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./dynemit.yaml if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides log.level)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides log.format)")

	root.AddCommand(
		newInfoCommand(),
		newFeaturesCommand(),
		newCheckCommand(),
		newBenchCommand(a),
	)
	return root
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	a.cfg = cfg
	return nil
}
