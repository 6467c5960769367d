// Package config loads the gphotos-mcp configuration file.
// Configuration is read once at startup; there is no runtime
// reconfiguration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

// File is the on-disk TOML configuration.
type File struct {
	Verbose   bool              `toml:"verbose"`
	RateLimit RateLimitSettings `toml:"rate_limit"`
	Cache     CacheSettings     `toml:"cache"`
}

// RateLimitSettings configures the quota limiter.
type RateLimitSettings struct {
	RequestsPerSecond int `toml:"requests_per_second"`
	RequestsPerDay    int `toml:"requests_per_day"`
	BurstAllowance    int `toml:"burst_allowance"`
	// ResetTimezone is the IANA timezone in which the provider's
	// daily quota resets, e.g. "America/Los_Angeles". Empty means UTC.
	ResetTimezone string `toml:"reset_timezone"`
}

// CacheSettings configures the response cache.
type CacheSettings struct {
	MaxSize int `toml:"max_size"`
}

// DefaultPath returns the default config file location,
// ~/.gphotos-mcp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gphotos-mcp", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an
// error: defaults apply.
func Load(path string) (*File, error) {
	f := &File{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// PhotosConfig resolves the file into a photos client configuration,
// filling unset fields from the client defaults.
func (f *File) PhotosConfig() (*photos.Config, error) {
	cfg := photos.DefaultConfig()

	if f.RateLimit.RequestsPerSecond > 0 {
		cfg.RateLimit.RequestsPerSecond = f.RateLimit.RequestsPerSecond
	}
	if f.RateLimit.RequestsPerDay > 0 {
		cfg.RateLimit.RequestsPerDay = f.RateLimit.RequestsPerDay
	}
	if f.RateLimit.BurstAllowance > 0 {
		cfg.RateLimit.BurstAllowance = f.RateLimit.BurstAllowance
	}
	if f.RateLimit.ResetTimezone != "" {
		loc, err := time.LoadLocation(f.RateLimit.ResetTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid reset_timezone %q: %w", f.RateLimit.ResetTimezone, err)
		}
		cfg.RateLimit.ResetTimezone = loc
	}
	if f.Cache.MaxSize > 0 {
		cfg.CacheMaxSize = f.Cache.MaxSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
