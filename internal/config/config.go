// Package config loads settings for the dynemit command.
//
// Sources in increasing precedence: built-in defaults, an optional YAML file
// and DYNEMIT_* environment variables (DYNEMIT_LOG_LEVEL, DYNEMIT_BENCH_TRIALS,
// ...). The library itself reads no configuration beyond the detector's
// kill switches in package cpu.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dynemit/internal/bench"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "DYNEMIT"

// Config represents the command configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Bench BenchConfig `mapstructure:"bench"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BenchConfig struct {
	Trials    int    `mapstructure:"trials"`
	Warmup    int    `mapstructure:"warmup"`
	OutputDir string `mapstructure:"output_dir"`
	Sizes     []int  `mapstructure:"sizes"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Bench: BenchConfig{
			Trials:    bench.DefaultTrials,
			Warmup:    bench.DefaultWarmup,
			OutputDir: "bench/data",
			Sizes:     append([]int(nil), bench.DefaultSizes...),
		},
	}
}

// Load loads configuration from file, environment, and defaults.
// An empty cfgFile searches the working directory for dynemit.yaml and
// tolerates its absence; an explicit path must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("dynemit")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be one of: [text json], got %q", c.Log.Format)
	}

	if c.Bench.Trials < 1 {
		return errors.New("bench.trials must be at least 1")
	}
	if c.Bench.Warmup < 0 {
		return errors.New("bench.warmup must not be negative")
	}
	if c.Bench.OutputDir == "" {
		return errors.New("bench.output_dir must not be empty")
	}
	if len(c.Bench.Sizes) == 0 {
		return errors.New("bench.sizes must not be empty")
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("bench.sizes: invalid size %d", n)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	v.SetDefault("bench.trials", cfg.Bench.Trials)
	v.SetDefault("bench.warmup", cfg.Bench.Warmup)
	v.SetDefault("bench.output_dir", cfg.Bench.OutputDir)
	v.SetDefault("bench.sizes", cfg.Bench.Sizes)
}
