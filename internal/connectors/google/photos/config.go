package photos

import (
	"errors"
	"time"
)

// Provider limits for the Photos Library API.
const (
	// MaxPageSize is the largest page the API will return for album
	// and search listings.
	MaxPageSize = 100

	// MaxBatchSize is the largest number of media item IDs accepted
	// by a single batchGet call.
	MaxBatchSize = 50

	// DefaultMaxResults is used when a caller does not bound a listing.
	DefaultMaxResults = 50
)

// Method-specific cache lifetimes. Album listings change rarely;
// search results and individual items churn more.
const (
	AlbumListTTL = 10 * time.Minute
	MediaItemTTL = 5 * time.Minute
	SearchTTL    = 2 * time.Minute
)

// RateLimitConfig holds quota configuration for a Photos client session.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond int
	// RequestsPerDay is the hard daily quota. Once reached, further
	// requests fail until the day rolls over.
	RequestsPerDay int
	// BurstAllowance is the size of the burst-token reserve that
	// absorbs short spikes above the sustained rate.
	BurstAllowance int
	// ResetTimezone is the IANA timezone in which the daily quota
	// resets. The provider does not document its reset timezone, so
	// it is an explicit input rather than an assumption about the
	// process's local clock. Defaults to UTC.
	ResetTimezone *time.Location
}

// Config holds the full client configuration.
type Config struct {
	RateLimit RateLimitConfig
	// CacheMaxSize bounds the number of cached responses.
	CacheMaxSize int
}

// DefaultConfig returns conservative defaults, well below Google's
// published Photos Library API limits.
func DefaultConfig() *Config {
	return &Config{
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			RequestsPerDay:    10000,
			BurstAllowance:    10,
			ResetTimezone:     time.UTC,
		},
		CacheMaxSize: 500,
	}
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("photos: requests per second must be positive")
	}
	if c.RateLimit.RequestsPerDay <= 0 {
		return errors.New("photos: requests per day must be positive")
	}
	if c.RateLimit.BurstAllowance <= 0 {
		return errors.New("photos: burst allowance must be positive")
	}
	if c.CacheMaxSize <= 0 {
		return errors.New("photos: cache max size must be positive")
	}
	return nil
}
