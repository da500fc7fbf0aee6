package config

import (
	"os"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/fetchsim/internal/errors"
)

// Resolve completes cfg, whose fields already hold the parsed flags on top
// of the defaults, with the lower-priority sources and validates the result.
// The priority is: CLI flags > environment variables > config file > defaults.
//
// fs is the FlagSet cfg was registered on; it may be nil when no flags were
// parsed. File and validation problems are returned as apperrors.ConfigError
// or apperrors.ValidationError.
func Resolve(cfg AppConfig, fs *pflag.FlagSet) (AppConfig, error) {
	if cfg.ConfigFile == "" && (fs == nil || !fs.Changed(FlagConfigFile)) {
		cfg.ConfigFile = os.Getenv(EnvPrefix + "CONFIG")
	}
	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, apperrors.NewConfigError("%s: %v", cfg.ConfigFile, err)
		}
		applyFile(&cfg, fc, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
