package mcp

import (
	"context"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

// PhotosService is the driving port the MCP server calls into.
// Implemented by *photos.Client.
type PhotosService interface {
	// ListAlbums returns up to maxAlbums albums.
	ListAlbums(ctx context.Context, maxAlbums int) ([]*photos.Album, error)

	// SearchMediaItems returns up to maxItems items matching the filter.
	SearchMediaItems(ctx context.Context, filter photos.SearchFilter, maxItems int) ([]*photos.MediaItem, error)

	// GetMediaItem returns a single media item by ID.
	GetMediaItem(ctx context.Context, id string) (*photos.MediaItem, error)

	// GetMediaItemsBatch fetches many media items with per-item results.
	GetMediaItemsBatch(ctx context.Context, ids []string) ([]photos.BatchResult, error)

	// CreateAlbum creates a new album.
	CreateAlbum(ctx context.Context, title string) (*photos.Album, error)

	// GetCacheStats reports cache and quota state.
	GetCacheStats() photos.CacheStats

	// ClearCache drops every cached response.
	ClearCache()
}

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Photos serves library reads and writes.
	Photos PhotosService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Photos == nil {
		return ErrMissingPhotosService
	}
	return nil
}
