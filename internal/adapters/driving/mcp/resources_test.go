package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	req := &mcp.ReadResourceRequest{}
	req.Params = &mcp.ReadResourceParams{URI: uri}
	return req
}

func TestHandleStatsResource(t *testing.T) {
	service := &mockPhotosService{stats: photos.CacheStats{
		CacheSize: 3,
		MaxSize:   100,
	}}
	server := newTestServer(t, service)

	result, err := server.handleStatsResource(context.Background(), readResourceRequest(uriScheme+"stats"))
	require.NoError(t, err)

	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"cache_size": 3`)
}

func TestHandleMediaItemResource(t *testing.T) {
	t.Run("returns item metadata", func(t *testing.T) {
		service := &mockPhotosService{item: &photos.MediaItem{ID: "abc", Filename: "img.jpg"}}
		server := newTestServer(t, service)

		result, err := server.handleMediaItemResource(context.Background(), readResourceRequest(uriScheme+"media/abc"))
		require.NoError(t, err)

		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"filename": "img.jpg"`)
	})

	t.Run("rejects malformed URIs", func(t *testing.T) {
		server := newTestServer(t, &mockPhotosService{})

		_, err := server.handleMediaItemResource(context.Background(), readResourceRequest(uriScheme+"albums/abc"))
		require.Error(t, err)
	})
}

func TestExtractMediaItemID(t *testing.T) {
	assert.Equal(t, "abc", extractMediaItemID("gphotos://media/abc"))
	assert.Empty(t, extractMediaItemID("gphotos://stats"))
	assert.Empty(t, extractMediaItemID("other://media/abc"))
}
