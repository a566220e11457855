package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/loader"
)

var validate = validator.New()

// Load reads, defaults and validates the configuration at path. A relative
// topology path is resolved against the directory of path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if !filepath.IsAbs(cfg.Topology.Path) {
		cfg.Topology.Path = filepath.Join(filepath.Dir(path), cfg.Topology.Path)
	}

	return cfg, nil
}

// Parse decodes YAML data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a valid configuration for the topology at path.
func Default(path string) *Config {
	cfg := &Config{Topology: TopologyConfig{Path: path}}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.Routing.Merge == "" {
		c.Routing.Merge = defaultMerge
	}
	if c.Routing.CacheSize == 0 {
		c.Routing.CacheSize = DefaultCacheSize
	}
	if c.Fare.DefaultTicket == "" {
		c.Fare.DefaultTicket = fare.SingleJourney.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

// Validate checks struct tags and the values validator cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := fare.ParseTicketType(c.Fare.DefaultTicket); err != nil {
		return fmt.Errorf("%w: fare.defaultTicket: %v", ErrInvalid, err)
	}

	return nil
}

// MergePolicy returns the configured weight merge rule.
func (c *Config) MergePolicy() core.MergePolicy {
	if c.Routing.Merge == "min" {
		return core.MergeMin
	}
	return core.MergeLast
}

// CacheSize returns the route cache capacity; 0 means caching is off.
func (c *Config) CacheSize() int {
	if c.Routing.CacheSize < 0 {
		return 0
	}
	return c.Routing.CacheSize
}

// TopologyFormat returns the configured loader format.
func (c *Config) TopologyFormat() loader.Format {
	f, err := loader.ParseFormat(c.Topology.Format)
	if err != nil {
		return loader.FormatAuto
	}
	return f
}

// DefaultTicket returns the configured default ticket type.
func (c *Config) DefaultTicket() fare.TicketType {
	t, err := fare.ParseTicketType(c.Fare.DefaultTicket)
	if err != nil {
		return fare.SingleJourney
	}
	return t
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
