// Package config loads the YAML configuration of a metro router.
package config

import "errors"

// ErrInvalid wraps every validation failure returned by Load and Parse.
var ErrInvalid = errors.New("config: invalid configuration")

// TopologyConfig locates the network topology file.
type TopologyConfig struct {
	// Path is resolved relative to the config file's directory.
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"omitempty,oneof=text yaml yml"`
	Strict bool   `yaml:"strict"`
}

// RoutingConfig tunes graph building and the query cache.
type RoutingConfig struct {
	Merge     string `yaml:"merge" validate:"omitempty,oneof=last min"`
	CacheSize int    `yaml:"cacheSize" validate:"gte=-1"` // 0 = default, -1 = off
	MaxPaths  int    `yaml:"maxPaths" validate:"gte=0"`   // 0 = unlimited
}

// FareConfig selects fare defaults.
type FareConfig struct {
	DefaultTicket string `yaml:"defaultTicket"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Config is the root configuration structure.
type Config struct {
	Topology TopologyConfig `yaml:"topology" validate:"required"`
	Routing  RoutingConfig  `yaml:"routing"`
	Fare     FareConfig     `yaml:"fare"`
	Log      LogConfig      `yaml:"log"`
}

const (
	// DefaultCacheSize is the route cache capacity when none is configured.
	DefaultCacheSize = 256
	defaultMerge     = "last"
	defaultLogLevel  = "info"
)
