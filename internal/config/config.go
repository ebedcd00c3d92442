// Package config loads the permtree configuration file.
//
// The file is TOML and every table is optional:
//
//	[bench]
//	min = 1
//	max = 9
//	samples = 100
//	seed = 42
//
//	[cache]
//	url = "redis://localhost:6379/0"   # "" for the file cache, "none" to disable
//	ttl = "720h"
//	prefix = "ci-runner-3:"            # namespace keys on a shared backend
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override values from the file. In [bench], a key that is
// present applies even when its value is zero; a zero samples or seed still
// means the default, and min = max = 0 selects the default sweep.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permtree/pkg/bench"
	"github.com/matzehuels/permtree/pkg/errors"
)

const (
	appName = "permtree"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"

	// DefaultAddr is the API listen address.
	DefaultAddr = ":8080"
)

// Config is the decoded configuration file.
type Config struct {
	Bench  bench.Config `toml:"bench"`
	Cache  Cache        `toml:"cache"`
	Server Server       `toml:"server"`

	meta toml.MetaData
}

// Cache selects the report store backend.
type Cache struct {
	URL    string        `toml:"url"`
	TTL    time.Duration `toml:"ttl"`
	Prefix string        `toml:"prefix"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// IsSet reports whether the file defined key, given as a table path such as
// ("bench", "min"). Configs that were not parsed from a file define nothing.
func (c *Config) IsSet(key ...string) bool {
	return c.meta.IsDefined(key...)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero values. Bench defaults are left to bench.Config so
// that flags can still distinguish "unset" from an explicit value.
func (c *Config) SetDefaults() {
	if c.Cache.TTL == 0 {
		c.Cache.TTL = bench.DefaultTTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
}

// Validate checks values that cannot be checked by their consumers later.
func (c *Config) Validate() error {
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Bench.MinN < 0 || c.Bench.MaxN < 0 || c.Bench.Samples < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bench sizes and samples must not be negative")
	}
	return nil
}

// Load reads path. An empty path loads the default location, where a
// missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	return Parse(data)
}

// Parse decodes TOML data, applies defaults, and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	cfg.meta = md
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir returns the config directory using XDG standard (~/.config/permtree/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
