package mcp

import (
	"context"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

// mockPhotosService is a mock implementation of PhotosService.
type mockPhotosService struct {
	albums       []*photos.Album
	items        []*photos.MediaItem
	item         *photos.MediaItem
	batchResults []photos.BatchResult
	created      *photos.Album
	stats        photos.CacheStats
	err          error

	lastFilter   photos.SearchFilter
	lastMaxItems int
	cleared      bool
}

func (m *mockPhotosService) ListAlbums(_ context.Context, _ int) ([]*photos.Album, error) {
	return m.albums, m.err
}

func (m *mockPhotosService) SearchMediaItems(_ context.Context, filter photos.SearchFilter, maxItems int) ([]*photos.MediaItem, error) {
	m.lastFilter = filter
	m.lastMaxItems = maxItems
	return m.items, m.err
}

func (m *mockPhotosService) GetMediaItem(_ context.Context, _ string) (*photos.MediaItem, error) {
	return m.item, m.err
}

func (m *mockPhotosService) GetMediaItemsBatch(_ context.Context, _ []string) ([]photos.BatchResult, error) {
	return m.batchResults, m.err
}

func (m *mockPhotosService) CreateAlbum(_ context.Context, _ string) (*photos.Album, error) {
	return m.created, m.err
}

func (m *mockPhotosService) GetCacheStats() photos.CacheStats {
	return m.stats
}

func (m *mockPhotosService) ClearCache() {
	m.cleared = true
}
