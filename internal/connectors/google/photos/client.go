package photos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/gphotos-mcp/internal/logger"
)

// Limiter gates outbound requests. Satisfied by *QuotaLimiter; a
// narrow interface so tests can observe acquisition counts.
type Limiter interface {
	// Acquire blocks until a request may proceed or fails with
	// *QuotaExceededError once the daily quota is spent.
	Acquire(ctx context.Context) error

	// Snapshot reports current quota state.
	Snapshot() LimiterSnapshot
}

// Client is a quota-aware caching front for the Photos Library API.
// Reads are served from a TTL/LRU cache where possible; every cache
// miss passes through the rate limiter before reaching the network.
// Mutations bypass the read path and purge the query families they
// make stale.
//
// One Client per authenticated session, shared by any number of
// concurrent callers.
type Client struct {
	executor Executor
	limiter  Limiter
	cache    *TTLCache
	group    singleflight.Group
}

// NewClient creates a client over the given executor.
func NewClient(executor Executor, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		executor: executor,
		limiter:  NewQuotaLimiter(cfg.RateLimit),
		cache:    NewTTLCache(cfg.CacheMaxSize),
	}, nil
}

// cachedCall serves key from the cache, or runs fetch exactly once
// for all concurrent callers of the same key and caches its result.
// A cache hit never touches the rate limiter; fetch is responsible
// for acquiring it before any network call.
func (c *Client) cachedCall(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (any, error)) (any, error) {
	if value, ok := c.cache.Get(key); ok {
		logger.Debug("photos: cache hit %s", key)
		return value, nil
	}
	logger.Debug("photos: cache miss %s", key)

	value, err, shared := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have filled the key while this one
		// was queueing on the flight group.
		if value, ok := c.cache.Get(key); ok {
			return value, nil
		}
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("photos: deduplicated concurrent fetch for %s", key)
	}
	return value, nil
}

// ListAlbums returns up to maxAlbums albums, paging through the
// provider as needed. The merged result is cached; each page request
// passes through the rate limiter independently.
func (c *Client) ListAlbums(ctx context.Context, maxAlbums int) ([]*Album, error) {
	if maxAlbums <= 0 {
		maxAlbums = DefaultMaxResults
	}

	value, err := c.cachedCall(ctx, albumListKey(maxAlbums), AlbumListTTL, func(ctx context.Context) (any, error) {
		var albums []*Album
		pageToken := ""
		for {
			if err := c.limiter.Acquire(ctx); err != nil {
				return nil, err
			}
			pageSize := min(maxAlbums-len(albums), MaxPageSize)
			page, next, err := c.executor.ListAlbums(ctx, pageSize, pageToken)
			if err != nil {
				return nil, fmt.Errorf("list albums: %w", err)
			}
			albums = append(albums, page...)
			if next == "" || len(albums) >= maxAlbums {
				break
			}
			pageToken = next
		}
		if len(albums) > maxAlbums {
			albums = albums[:maxAlbums]
		}
		return albums, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]*Album), nil
}

// SearchMediaItems returns up to maxItems media items matching the
// filter, paging as needed. Results are cached under the canonical
// form of the filter, so equivalent filters share an entry.
func (c *Client) SearchMediaItems(ctx context.Context, filter SearchFilter, maxItems int) ([]*MediaItem, error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxResults
	}

	value, err := c.cachedCall(ctx, searchKey(filter, maxItems), SearchTTL, func(ctx context.Context) (any, error) {
		var items []*MediaItem
		pageToken := ""
		for {
			if err := c.limiter.Acquire(ctx); err != nil {
				return nil, err
			}
			pageSize := min(maxItems-len(items), MaxPageSize)
			page, next, err := c.executor.SearchMediaItems(ctx, filter, pageSize, pageToken)
			if err != nil {
				return nil, fmt.Errorf("search media items: %w", err)
			}
			items = append(items, page...)
			if next == "" || len(items) >= maxItems {
				break
			}
			pageToken = next
		}
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]*MediaItem), nil
}

// GetMediaItem returns a single media item by ID.
func (c *Client) GetMediaItem(ctx context.Context, id string) (*MediaItem, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	value, err := c.cachedCall(ctx, mediaItemKey(id), MediaItemTTL, func(ctx context.Context) (any, error) {
		if err := c.limiter.Acquire(ctx); err != nil {
			return nil, err
		}
		item, err := c.executor.GetMediaItem(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get media item: %w", err)
		}
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*MediaItem), nil
}

// GetMediaItemsBatch fetches many media items, splitting the request
// into provider-sized chunks. Each chunk is rate-limited and cached
// independently under an order-independent key. Per-item failures are
// reported in the result slice; a batch is never all-or-nothing.
func (c *Client) GetMediaItemsBatch(ctx context.Context, ids []string) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(ids))
	for start := 0; start < len(ids); start += MaxBatchSize {
		chunk := ids[start:min(start+MaxBatchSize, len(ids))]

		value, err := c.cachedCall(ctx, batchKey(chunk), MediaItemTTL, func(ctx context.Context) (any, error) {
			if err := c.limiter.Acquire(ctx); err != nil {
				return nil, err
			}
			chunkResults, err := c.executor.BatchGetMediaItems(ctx, chunk)
			if err != nil {
				return nil, fmt.Errorf("batch get media items: %w", err)
			}
			return chunkResults, nil
		})
		if err != nil {
			return nil, err
		}

		// The cached chunk may have been fetched for a different ID
		// ordering; align results with this caller's order.
		byID := make(map[string]BatchResult)
		for _, r := range value.([]BatchResult) {
			byID[r.ID] = r
		}
		for _, id := range chunk {
			if r, ok := byID[id]; ok {
				results = append(results, r)
				continue
			}
			results = append(results, BatchResult{
				ID:  id,
				Err: fmt.Errorf("photos: media item %q: missing from batch response", id),
			})
		}
	}
	return results, nil
}

// CreateAlbum creates an album. The call never consults the cache; on
// success every cached album listing is purged, since a new album
// changes the result of any such query.
func (c *Client) CreateAlbum(ctx context.Context, title string) (*Album, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	album, err := c.executor.CreateAlbum(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	removed := c.cache.Invalidate(func(key string) bool {
		return strings.HasPrefix(key, keyPrefixAlbumList)
	})
	logger.Debug("photos: created album %q, invalidated %d cached listings", title, removed)
	return album, nil
}

// GetCacheStats reports cache and quota state. Expired entries are
// swept first so the reported size counts live entries only.
func (c *Client) GetCacheStats() CacheStats {
	swept := c.cache.SweepExpired()
	if swept > 0 {
		logger.Debug("photos: stats sweep removed %d expired entries", swept)
	}

	snap := c.limiter.Snapshot()
	return CacheStats{
		CacheSize:            c.cache.Len(),
		MaxSize:              c.cache.MaxSize(),
		ExpiredSwept:         c.cache.ExpiredSwept(),
		DailyRequestCounts:   snap.DailyCounts,
		BurstTokensRemaining: snap.BurstTokens,
	}
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	c.cache.Clear()
	logger.Debug("photos: cache cleared")
}
