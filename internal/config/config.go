package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk simulator configuration (YAML). Every field is
// optional; Default fills in what a file leaves out.
type Config struct {
	SavingsRate   float64                `yaml:"savings_rate"`
	QuoteFetch    QuoteFetchConfig       `yaml:"quote_fetch"`
	QuoteCacheTTL time.Duration          `yaml:"quote_cache_ttl"`
	Benchmarks    map[int]BenchmarkLevel `yaml:"benchmarks"`

	// skips pricing the current year with the latest bid
	DisableLatestPrice bool `yaml:"disable_latest_price"`
}

type QuoteFetchConfig struct {
	BatchSize  int           `yaml:"batch_size"`
	BatchDelay time.Duration `yaml:"batch_delay"`
}

// BenchmarkLevel is the S&P 500 level at the start of a year and today.
type BenchmarkLevel struct {
	Start float64 `yaml:"start"`
	Now   float64 `yaml:"now"`
}

func Default() *Config {
	return &Config{
		SavingsRate: 0.045,
		QuoteFetch: QuoteFetchConfig{
			BatchSize:  5,
			BatchDelay: 250 * time.Millisecond,
		},
		QuoteCacheTTL: time.Hour,
		Benchmarks:    map[int]BenchmarkLevel{},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if c.Benchmarks == nil {
		c.Benchmarks = map[int]BenchmarkLevel{}
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.SavingsRate < 0 {
		return fmt.Errorf("savings_rate cannot be negative, got %f", c.SavingsRate)
	}
	if c.QuoteFetch.BatchSize <= 0 {
		return fmt.Errorf("quote_fetch.batch_size must be positive, got %d", c.QuoteFetch.BatchSize)
	}
	if c.QuoteFetch.BatchDelay < 0 {
		return errors.New("quote_fetch.batch_delay cannot be negative")
	}
	if c.QuoteCacheTTL < 0 {
		return errors.New("quote_cache_ttl cannot be negative")
	}
	for year, level := range c.Benchmarks {
		if level.Start <= 0 {
			return fmt.Errorf("benchmarks.%d.start must be positive", year)
		}
		if level.Now < 0 {
			return fmt.Errorf("benchmarks.%d.now cannot be negative", year)
		}
	}
	return nil
}
