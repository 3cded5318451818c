package sampler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/fakir_go/log"
	"github.com/on-the-ground/fakir_go/random"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("sampler: invalid config")

// Config drives a Sampler. The zero value of every field selects its default.
type Config struct {
	Seed      uint64 `yaml:"seed"`
	Algorithm string `yaml:"algorithm,omitempty"`
	// Stream is mixed into Seed, so samplers sharing a seed but not a stream
	// draw independent sequences.
	Stream          string `yaml:"stream,omitempty"`
	Count           int    `yaml:"count,omitempty"`       // default: 1
	BufferSize      int    `yaml:"buffer_size,omitempty"` // default: 1
	RejectionLimit  int    `yaml:"rejection_limit,omitempty"`
	ContinueOnError bool   `yaml:"continue_on_error,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

func NewConfig() Config {
	return Config{}.normalize()
}

func (c Config) normalize() Config {
	if c.Algorithm == "" {
		c.Algorithm = string(random.PCG)
	}
	if c.Count == 0 {
		c.Count = 1
	}
	if c.BufferSize == 0 {
		c.BufferSize = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = log.LevelInfo
	}
	return c
}

func (c Config) Validate() error {
	if _, err := random.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidConfig, c.Count)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer_size %d", ErrInvalidConfig, c.BufferSize)
	}
	if c.RejectionLimit < 0 {
		return fmt.Errorf("%w: rejection_limit %d", ErrInvalidConfig, c.RejectionLimit)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ParseConfig decodes YAML on top of the defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read sampler config: %w", err)
	}
	return ParseConfig(data)
}

// NewSource builds the random source the config describes.
func (c Config) NewSource() (*random.Rand, error) {
	alg, err := random.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	seed := c.Seed
	if c.Stream != "" {
		seed = random.Derive(seed, c.Stream)
	}
	return random.NewWith(alg, seed)
}

// NewLogger builds a production logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	return log.New(c.LogLevel)
}
