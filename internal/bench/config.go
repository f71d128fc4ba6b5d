package bench

import (
	"fmt"
	"os"

	"github.com/dshills/cartesian/internal/engine/treap"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultTrials      = 100
	DefaultChunks      = 50
	DefaultMinLength   = 20
	DefaultMaxLength   = 25
	DefaultConcurrency = 4
)

// Config describes an advantage experiment.
type Config struct {
	// Trials is the number of independent ropes measured.
	Trials int `yaml:"trials"`

	// Chunks is the number of ropes concatenated per trial.
	Chunks int `yaml:"chunks"`

	// MinLength and MaxLength bound each rope's length: [MinLength, MaxLength).
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`

	// Threshold is the DirectCopyThreshold in effect during the run.
	Threshold int `yaml:"threshold"`

	// Seed seeds chunk lengths and, when non-zero, node priorities. Zero
	// draws a random seed for the chunk lengths.
	// Runs are only reproducible with Concurrency 1, since trials share the
	// priority source.
	Seed uint64 `yaml:"seed"`

	// Concurrency bounds the number of trials running at once.
	Concurrency int `yaml:"concurrency"`

	// MetricsFile, when set, receives the run's metrics in the Prometheus
	// text format.
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Trials:      DefaultTrials,
		Chunks:      DefaultChunks,
		MinLength:   DefaultMinLength,
		MaxLength:   DefaultMaxLength,
		Threshold:   treap.DefaultDirectCopyThreshold,
		Concurrency: DefaultConcurrency,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every value is within range.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.Chunks < 1:
		return fmt.Errorf("%w: chunks must be positive, got %d", ErrInvalidConfig, c.Chunks)
	case c.MinLength < 1:
		return fmt.Errorf("%w: min_length must be positive, got %d", ErrInvalidConfig, c.MinLength)
	case c.MaxLength <= c.MinLength:
		return fmt.Errorf("%w: max_length %d must exceed min_length %d", ErrInvalidConfig, c.MaxLength, c.MinLength)
	case c.Threshold < 0:
		return fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalidConfig, c.Threshold)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidConfig, c.Concurrency)
	}
	return nil
}
