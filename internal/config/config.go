// Package config holds the fetchsim run configuration and its resolution
// from command-line flags, FETCHSIM_ environment variables, an optional
// YAML file and built-in defaults.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/fetchsim/internal/errors"
	"github.com/agbru/fetchsim/internal/fetch"
	"github.com/agbru/fetchsim/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by fetchsim.
const EnvPrefix = "FETCHSIM_"

// Flag names. They double as the keys of the env override table.
const (
	FlagEndpoints   = "endpoints"
	FlagMinDelay    = "min-delay"
	FlagMaxDelay    = "max-delay"
	FlagWorkers     = "workers"
	FlagSeed        = "seed"
	FlagConfigFile  = "config"
	FlagMetricsFile = "metrics-file"
	FlagLogLevel    = "log-level"
	FlagQuiet       = "quiet"
	FlagNoColor     = "no-color"
	FlagTUI         = "tui"
)

// DefaultLogLevel keeps diagnostics out of the way of the notices on stdout.
const DefaultLogLevel = "warn"

// DefaultEndpoints is the fixed list fetched when nothing else is configured.
var DefaultEndpoints = []string{"api/users", "api/products", "api/orders"}

// AppConfig aggregates all configuration parameters of a run.
type AppConfig struct {
	// Endpoints lists the identifiers to fetch, in launch order.
	Endpoints []string
	// MinDelay and MaxDelay bound the simulated latency of every fetch.
	MinDelay time.Duration
	MaxDelay time.Duration
	// Workers bounds the number of fetches in flight; 0 means unbounded.
	Workers int
	// Seed makes a run reproducible; 0 seeds from the clock.
	Seed uint64
	// ConfigFile is an optional YAML file merged under flags and env.
	ConfigFile string
	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// Quiet suppresses the banner and the per-task start/done notices.
	Quiet bool
	// NoColor disables ANSI colours.
	NoColor bool
	// TUI runs the interactive dashboard instead of line output.
	TUI bool
}

// Default returns the configuration used when nothing overrides it.
func Default() AppConfig {
	return AppConfig{
		Endpoints: append([]string(nil), DefaultEndpoints...),
		MinDelay:  fetch.DefaultMinDelay,
		MaxDelay:  fetch.DefaultMaxDelay,
		LogLevel:  DefaultLogLevel,
	}
}

// RegisterFlags declares every fetchsim flag on fs, bound to cfg. The
// current contents of cfg become the flag defaults.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.StringSliceVarP(&cfg.Endpoints, FlagEndpoints, "e", cfg.Endpoints, "Endpoints to fetch (comma-separated or repeated).")
	fs.DurationVar(&cfg.MinDelay, FlagMinDelay, cfg.MinDelay, "Lower bound of the simulated latency.")
	fs.DurationVar(&cfg.MaxDelay, FlagMaxDelay, cfg.MaxDelay, "Upper bound of the simulated latency.")
	fs.IntVarP(&cfg.Workers, FlagWorkers, "w", cfg.Workers, "Maximum concurrent fetches (0 = unbounded).")
	fs.Uint64Var(&cfg.Seed, FlagSeed, cfg.Seed, "Random seed for reproducible runs (0 = time-seeded).")
	fs.StringVarP(&cfg.ConfigFile, FlagConfigFile, "c", cfg.ConfigFile, "Path to a YAML configuration file.")
	fs.StringVar(&cfg.MetricsFile, FlagMetricsFile, cfg.MetricsFile, "Write Prometheus metrics to this file after the run.")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "Diagnostic log level (debug, info, warn, error).")
	fs.BoolVarP(&cfg.Quiet, FlagQuiet, "q", cfg.Quiet, "Only print outcomes and the summary.")
	fs.BoolVar(&cfg.NoColor, FlagNoColor, cfg.NoColor, "Disable coloured output.")
	fs.BoolVar(&cfg.TUI, FlagTUI, cfg.TUI, "Show the interactive dashboard.")
}

// DelayRange returns the configured latency bounds.
func (c AppConfig) DelayRange() fetch.DelayRange {
	return fetch.DelayRange{Min: c.MinDelay, Max: c.MaxDelay}
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	if len(c.Endpoints) == 0 {
		return apperrors.ValidationError{Field: FlagEndpoints, Message: "at least one endpoint is required"}
	}
	seen := make(map[string]struct{}, len(c.Endpoints))
	for _, ep := range c.Endpoints {
		if strings.TrimSpace(ep) == "" {
			return apperrors.ValidationError{Field: FlagEndpoints, Message: "endpoints must not be blank"}
		}
		if _, dup := seen[ep]; dup {
			return apperrors.ValidationError{Field: FlagEndpoints, Message: "duplicate endpoint " + ep}
		}
		seen[ep] = struct{}{}
	}
	if err := c.DelayRange().Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: FlagWorkers, Message: "must be non-negative"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid --%s: %v", FlagLogLevel, err)
	}
	return nil
}
