package photos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google"
)

func newTestExecutor(handler http.Handler) (*RESTExecutor, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &RESTExecutor{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}, srv
}

func TestRESTExecutor_ListAlbums(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/albums", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "tok", r.URL.Query().Get("pageToken"))

		json.NewEncoder(w).Encode(map[string]any{
			"albums": []map[string]any{
				{"id": "a1", "title": "Holiday"},
				{"id": "a2", "title": "Pets"},
			},
			"nextPageToken": "next",
		})
	}))
	defer srv.Close()

	albums, next, err := executor.ListAlbums(context.Background(), 25, "tok")
	require.NoError(t, err)

	require.Len(t, albums, 2)
	assert.Equal(t, "a1", albums[0].ID)
	assert.Equal(t, "Holiday", albums[0].Title)
	assert.Equal(t, "next", next)
}

func TestRESTExecutor_SearchMediaItems(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mediaItems:search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 10, body["pageSize"])

		filters, ok := body["filters"].(map[string]any)
		require.True(t, ok, "non-empty filter must be sent on the wire")
		content := filters["contentFilter"].(map[string]any)
		assert.ElementsMatch(t, []any{"PEOPLE"}, content["includedContentCategories"])
		types := filters["mediaTypeFilter"].(map[string]any)
		assert.ElementsMatch(t, []any{"PHOTO"}, types["mediaTypes"])

		json.NewEncoder(w).Encode(map[string]any{
			"mediaItems": []map[string]any{{"id": "m1", "filename": "img.jpg"}},
		})
	}))
	defer srv.Close()

	filter, err := NewFilterBuilder().
		WithCategories("people").
		WithMediaTypes(MediaTypePhoto).
		Build()
	require.NoError(t, err)

	items, next, err := executor.SearchMediaItems(context.Background(), filter, 10, "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
	assert.Empty(t, next)
}

func TestRESTExecutor_SearchOmitsEmptyFilter(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, present := body["filters"]
		assert.False(t, present, "empty filter must be omitted")

		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	_, _, err := executor.SearchMediaItems(context.Background(), SearchFilter{}, 10, "")
	require.NoError(t, err)
}

func TestRESTExecutor_GetMediaItem(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mediaItems/abc", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "abc",
			"filename": "img.jpg",
			"mediaMetadata": map[string]any{
				"creationTime": "2026-01-15T10:00:00Z",
			},
		})
	}))
	defer srv.Close()

	item, err := executor.GetMediaItem(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", item.ID)
	require.NotNil(t, item.Metadata)
	assert.Equal(t, "2026-01-15T10:00:00Z", item.Metadata.CreationTime)
}

func TestRESTExecutor_BatchGetMediaItems(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mediaItems:batchGet", r.URL.Path)
		assert.Equal(t, []string{"a", "b", "c"}, r.URL.Query()["mediaItemIds"])

		json.NewEncoder(w).Encode(map[string]any{
			"mediaItemResults": []map[string]any{
				{"mediaItem": map[string]any{"id": "a"}},
				{"status": map[string]any{"code": 5, "message": "not found"}},
				{"mediaItem": map[string]any{"id": "c"}},
			},
		})
	}))
	defer srv.Close()

	results, err := executor.BatchGetMediaItems(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err, "per-item failures must not fail the batch")

	require.Len(t, results, 3)
	assert.NotNil(t, results[0].Item)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "not found")
	assert.NotNil(t, results[2].Item)
}

func TestRESTExecutor_CreateAlbum(t *testing.T) {
	executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/albums", r.URL.Path)

		var body createAlbumRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Holiday", body.Album.Title)

		json.NewEncoder(w).Encode(map[string]any{"id": "new", "title": "Holiday"})
	}))
	defer srv.Close()

	album, err := executor.CreateAlbum(context.Background(), "Holiday")
	require.NoError(t, err)

	assert.Equal(t, "new", album.ID)
	assert.Equal(t, "Holiday", album.Title)
}

func TestRESTExecutor_ErrorMapping(t *testing.T) {
	t.Run("404 maps to the shared not-found sentinel", func(t *testing.T) {
		executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"code":404,"message":"no such item"}}`, http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := executor.GetMediaItem(context.Background(), "missing")
		require.ErrorIs(t, err, google.ErrNotFound)
	})

	t.Run("429 maps to the provider rate limit sentinel", func(t *testing.T) {
		executor, srv := newTestExecutor(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"code":429,"message":"slow down"}}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, _, err := executor.ListAlbums(context.Background(), 10, "")
		require.ErrorIs(t, err, google.ErrRateLimited)
	})
}
