package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML representation of a configuration file. Absent
// keys leave the corresponding setting untouched.
type FileConfig struct {
	Endpoints   []string       `yaml:"endpoints,omitempty"`
	MinDelay    *time.Duration `yaml:"min_delay,omitempty"`
	MaxDelay    *time.Duration `yaml:"max_delay,omitempty"`
	Workers     *int           `yaml:"workers,omitempty"`
	Seed        *uint64        `yaml:"seed,omitempty"`
	MetricsFile *string        `yaml:"metrics_file,omitempty"`
	LogLevel    *string        `yaml:"log_level,omitempty"`
	Quiet       *bool          `yaml:"quiet,omitempty"`
	NoColor     *bool          `yaml:"no_color,omitempty"`
	TUI         *bool          `yaml:"tui,omitempty"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &fc, nil
}

// applyFile copies every key present in fc into config, skipping settings
// whose flag was explicitly set.
func applyFile(config *AppConfig, fc *FileConfig, fs *pflag.FlagSet) {
	changed := func(name string) bool { return fs != nil && fs.Changed(name) }

	if len(fc.Endpoints) > 0 && !changed(FlagEndpoints) {
		config.Endpoints = append([]string(nil), fc.Endpoints...)
	}
	if fc.MinDelay != nil && !changed(FlagMinDelay) {
		config.MinDelay = *fc.MinDelay
	}
	if fc.MaxDelay != nil && !changed(FlagMaxDelay) {
		config.MaxDelay = *fc.MaxDelay
	}
	if fc.Workers != nil && !changed(FlagWorkers) {
		config.Workers = *fc.Workers
	}
	if fc.Seed != nil && !changed(FlagSeed) {
		config.Seed = *fc.Seed
	}
	if fc.MetricsFile != nil && !changed(FlagMetricsFile) {
		config.MetricsFile = *fc.MetricsFile
	}
	if fc.LogLevel != nil && !changed(FlagLogLevel) {
		config.LogLevel = *fc.LogLevel
	}
	if fc.Quiet != nil && !changed(FlagQuiet) {
		config.Quiet = *fc.Quiet
	}
	if fc.NoColor != nil && !changed(FlagNoColor) {
		config.NoColor = *fc.NoColor
	}
	if fc.TUI != nil && !changed(FlagTUI) {
		config.TUI = *fc.TUI
	}
}
