// Package config holds the run settings that are not command-line flags:
// batch timeout, worker limit, strategy set, random seed, logging and the
// optional metrics dump. Settings come from built-in defaults, optionally
// overlaid by a YAML file named in $PGSOLVE_CONFIG.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/parity/strategy"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "PGSOLVE_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	// Timeout bounds each strategy on each file in batch mode.
	Timeout time.Duration `yaml:"timeout"`
	// Seed drives the random strategy; 0 picks a time-based seed per run.
	Seed int64 `yaml:"seed"`
	// Workers limits concurrent solves in batch mode; 0 means one per strategy.
	Workers int `yaml:"workers"`
	// Strategies is the batch strategy set, in output order.
	Strategies []string `yaml:"strategies"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// MetricsFile, when set, receives a Prometheus text dump after a batch.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration: all five strategies, a ten
// second per-file timeout and warn-level text logs.
func Default() Config {
	kinds := strategy.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return Config{
		Timeout:    10 * time.Second,
		Strategies: names,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// Load overlays the YAML file at path onto Default and validates the
// result. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty file decodes to io.EOF and leaves the defaults in place
	if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by $PGSOLVE_CONFIG, or returns Default when
// the variable is unset or empty.
func FromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvVar))
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: at least one strategy is required", ErrInvalidConfig)
	}
	seen := make(map[strategy.Kind]bool, len(c.Strategies))
	for _, name := range c.Strategies {
		k, err := strategy.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if seen[k] {
			return fmt.Errorf("%w: strategy %q listed twice", ErrInvalidConfig, name)
		}
		seen[k] = true
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Kinds returns the configured strategies in order. The config must be valid.
func (c Config) Kinds() []strategy.Kind {
	out := make([]strategy.Kind, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		if k, err := strategy.ParseKind(name); err == nil {
			out = append(out, k)
		}
	}
	return out
}
