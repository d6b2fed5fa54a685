// Package config loads the lagraph CLI configuration from an optional YAML
// file and LAGRAPH_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lagraph/bfs"
	"github.com/katalvlaran/lagraph/builder"
)

// Environment variables read by Load. Non-empty values override the file.
const (
	EnvWorkers         = "LAGRAPH_WORKERS"
	EnvLogLevel        = "LAGRAPH_LOG_LEVEL"
	EnvDefaultRelation = "LAGRAPH_DEFAULT_RELATION"
	EnvAlpha           = "LAGRAPH_ALPHA"
	EnvBeta1           = "LAGRAPH_BETA1"
	EnvBeta2           = "LAGRAPH_BETA2"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	Tuning          bfs.Tuning `yaml:"tuning"`
	Workers         int        `yaml:"workers"`
	LogLevel        string     `yaml:"log_level"`
	DefaultRelation string     `yaml:"default_relation"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tuning:          bfs.DefaultTuning(),
		Workers:         1,
		LogLevel:        "info",
		DefaultRelation: builder.DefaultRelation,
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), then the environment, and validates the result.
// Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvWorkers); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvWorkers, v)
		}
		cfg.Workers = w
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvDefaultRelation); v != "" {
		cfg.DefaultRelation = v
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{EnvAlpha, &cfg.Tuning.Alpha},
		{EnvBeta1, &cfg.Tuning.Beta1},
		{EnvBeta2, &cfg.Tuning.Beta2},
	} {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, f.key, v)
		}
		*f.dst = x
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.DefaultRelation == "" || strings.ContainsAny(c.DefaultRelation, " \t\r\n#") {
		return fmt.Errorf("%w: default_relation %q must be one non-empty token", ErrInvalidConfig, c.DefaultRelation)
	}

	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
