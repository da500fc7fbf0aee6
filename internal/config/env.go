// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FETCHSIM_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparsable values are ignored and leave the lower-priority value in place.
var envOverrides = []envOverride{
	// Numeric overrides
	{"WORKERS", FlagWorkers, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"SEED", FlagSeed, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Duration overrides
	{"MIN_DELAY", FlagMinDelay, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.MinDelay = parsed
		}
	}},
	{"MAX_DELAY", FlagMaxDelay, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.MaxDelay = parsed
		}
	}},

	// String overrides
	{"ENDPOINTS", FlagEndpoints, func(c *AppConfig, v string) {
		if eps := splitList(v); len(eps) > 0 {
			c.Endpoints = eps
		}
	}},
	{"METRICS_FILE", FlagMetricsFile, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},
	{"LOG_LEVEL", FlagLogLevel, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},

	// Boolean overrides
	{"QUIET", FlagQuiet, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", FlagNoColor, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"TUI", FlagTUI, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// splitList splits a comma-separated list, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// A nil FlagSet treats every flag as unset.
//
// Supported environment variables (all prefixed with FETCHSIM_):
//   - ENDPOINTS, MIN_DELAY, MAX_DELAY, WORKERS, SEED, METRICS_FILE,
//     LOG_LEVEL, QUIET, NO_COLOR, TUI
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if fs != nil && fs.Changed(o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
