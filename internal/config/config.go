// SPDX-License-Identifier: MIT

// Package config resolves CLI configuration from flags, POLYRECON_* environment
// variables and an optional config file, in that order of precedence, using
// viper. The resolved Config is translated into reconstruct options; the core
// packages never see viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/polyrecon/reconstruct"
	"github.com/katalvlaran/polyrecon/sampleset"
)

// EnvPrefix is the prefix of environment overrides (POLYRECON_ZERO_POLICY, ...).
const EnvPrefix = "POLYRECON"

// Configuration keys, shared by flags, env vars and config files.
const (
	KeyConfigFile  = "config"
	KeyZeroPolicy  = "zero-policy"
	KeyDuplicates  = "duplicates"
	KeySecretScope = "secret-scope"
	KeyCrossCheck  = "cross-check"
	KeyTolerance   = "residual-tolerance"
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	ZeroPolicy  sampleset.ZeroPolicy
	Duplicates  sampleset.DuplicatePolicy
	SecretScope reconstruct.SecretScope
	CrossCheck  bool
	Tolerance   float64
	Output      string
	LogLevel    string
}

// RegisterFlags declares every configuration flag on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigFile, "", "path to a YAML/JSON/TOML config file")
	fs.String(KeyZeroPolicy, sampleset.DefaultZeroPolicy.String(),
		"treatment of samples decoding to 0: legacy-truthy | accept-zero")
	fs.String(KeyDuplicates, sampleset.DefaultDuplicatePolicy.String(),
		"duplicate x-value policy: reject | keep-last")
	fs.String(KeySecretScope, reconstruct.DefaultSecretScope.String(),
		"samples used for the secret: all | basis")
	fs.Bool(KeyCrossCheck, reconstruct.DefaultCrossCheck,
		"re-solve the basis as a Vandermonde system and fail on disagreement")
	fs.Float64(KeyTolerance, reconstruct.DefaultResidualTolerance,
		"|f(x) - y| above which a sample is reported as mismatched")
	fs.StringP(KeyOutput, "o", OutputText, "result format: text | json")
	fs.String(KeyLogLevel, "info", "log level: debug | info | warn | error")
}

// New returns a viper instance bound to fs and the POLYRECON_* environment.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	return v, nil
}

// Load reads the optional config file named by KeyConfigFile and resolves v
// into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	var err error
	if cfg.ZeroPolicy, err = sampleset.ParseZeroPolicy(v.GetString(KeyZeroPolicy)); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.Duplicates, err = sampleset.ParseDuplicatePolicy(v.GetString(KeyDuplicates)); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.SecretScope, err = reconstruct.ParseSecretScope(v.GetString(KeySecretScope)); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.CrossCheck = v.GetBool(KeyCrossCheck)
	cfg.Tolerance = v.GetFloat64(KeyTolerance)
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return Config{}, fmt.Errorf("%w: residual tolerance %v", ErrInvalid, cfg.Tolerance)
	}

	cfg.Output = strings.ToLower(v.GetString(KeyOutput))
	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return Config{}, fmt.Errorf("%w: unknown output %q", ErrInvalid, cfg.Output)
	}
	cfg.LogLevel = v.GetString(KeyLogLevel)

	return cfg, nil
}

// Options translates cfg into reconstruct options.
func (c Config) Options() []reconstruct.Option {
	opts := []reconstruct.Option{
		reconstruct.WithZeroPolicy(c.ZeroPolicy),
		reconstruct.WithDuplicates(c.Duplicates),
		reconstruct.WithSecretScope(c.SecretScope),
		reconstruct.WithResidualTolerance(c.Tolerance),
	}
	if c.CrossCheck {
		opts = append(opts, reconstruct.WithCrossCheck())
	}

	return opts
}
