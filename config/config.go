// SPDX-License-Identifier: MIT

// Package config loads the linstep application configuration from YAML.
//
// Every field has a documented default (Default); a file only needs the keys
// it overrides:
//
//	log:
//	  level: debug
//	solver:
//	  default_method: jacobi
//	  max_iterations: 200
//	server:
//	  addr: ":9090"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/linstep/solver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"oneof=json console"`
}

// SolverConfig holds the defaults applied to every solve.
type SolverConfig struct {
	DefaultMethod  string  `yaml:"default_method" validate:"required"`
	PivotTolerance float64 `yaml:"pivot_tolerance" validate:"gte=0,lte=1"`
	Tolerance      float64 `yaml:"tolerance" validate:"gt=0,lte=1"`
	MaxIterations  int     `yaml:"max_iterations" validate:"gt=0,lte=1000"`
	IntegerSnap    float64 `yaml:"integer_snap" validate:"gte=0,lt=0.5"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Encoding: "json"},
		Solver: SolverConfig{
			DefaultMethod:  solver.MethodGauss.String(),
			PivotTolerance: solver.DefaultPivotTolerance,
			Tolerance:      solver.DefaultTolerance,
			MaxIterations:  solver.DefaultMaxIterations,
			IntegerSnap:    solver.DefaultIntegerSnap,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    1 << 16,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(raw))
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected; an empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and that the default method is known.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := solver.ParseMethod(c.Solver.DefaultMethod); err != nil {
		return fmt.Errorf("%w: solver.default_method: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Method returns the configured default method. Validate has already
// checked it, so the error is only reachable on a hand-built Config.
func (c SolverConfig) Method() (solver.Method, error) {
	return solver.ParseMethod(c.DefaultMethod)
}

// Options converts the solver section into solver options.
func (c SolverConfig) Options() []solver.Option {
	return []solver.Option{
		solver.WithPivotTolerance(c.PivotTolerance),
		solver.WithTolerance(c.Tolerance),
		solver.WithMaxIterations(c.MaxIterations),
		solver.WithIntegerSnap(c.IntegerSnap),
	}
}

// Build creates a zap logger from the production preset; verbose forces the
// debug level regardless of Level.
func (c LogConfig) Build(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.Encoding
	if c.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger, nil
}
