package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google/photos"
)

// AlbumOutput is the tool-facing view of an album.
type AlbumOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ProductURL string `json:"product_url,omitempty"`
	ItemCount  int64  `json:"item_count,omitempty"`
}

// MediaItemOutput is the tool-facing view of a media item.
type MediaItemOutput struct {
	ID           string `json:"id"`
	Filename     string `json:"filename,omitempty"`
	Description  string `json:"description,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	ProductURL   string `json:"product_url,omitempty"`
	CreationTime string `json:"creation_time,omitempty"`
}

// ListAlbumsInput is the input schema for the list_albums tool.
type ListAlbumsInput struct {
	MaxAlbums int `json:"max_albums,omitempty" jsonschema:"maximum number of albums to return (default 50)"`
}

// ListAlbumsOutput is the output schema for the list_albums tool.
type ListAlbumsOutput struct {
	Albums []AlbumOutput `json:"albums"`
	Count  int           `json:"count"`
}

// SearchInput is the input schema for the search_media_items tool.
type SearchInput struct {
	Categories []string `json:"categories,omitempty" jsonschema:"content categories to match, e.g. PEOPLE, LANDSCAPES"`
	StartDate  string   `json:"start_date,omitempty" jsonschema:"earliest creation date, YYYY-MM-DD"`
	EndDate    string   `json:"end_date,omitempty" jsonschema:"latest creation date, YYYY-MM-DD"`
	MediaTypes []string `json:"media_types,omitempty" jsonschema:"restrict to PHOTO and/or VIDEO"`
	MaxItems   int      `json:"max_items,omitempty" jsonschema:"maximum number of items to return (default 50)"`
}

// SearchOutput is the output schema for the search_media_items tool.
type SearchOutput struct {
	Items []MediaItemOutput `json:"items"`
	Count int               `json:"count"`
}

// GetMediaItemInput is the input schema for the get_media_item tool.
type GetMediaItemInput struct {
	ID string `json:"id" jsonschema:"the media item ID"`
}

// GetMediaItemOutput is the output schema for the get_media_item tool.
type GetMediaItemOutput struct {
	Item MediaItemOutput `json:"item"`
}

// BatchGetInput is the input schema for the get_media_items_batch tool.
type BatchGetInput struct {
	IDs []string `json:"ids" jsonschema:"the media item IDs to fetch"`
}

// BatchEntryOutput is one per-item result in a batch response.
type BatchEntryOutput struct {
	ID    string           `json:"id"`
	Item  *MediaItemOutput `json:"item,omitempty"`
	Error string           `json:"error,omitempty"`
}

// BatchGetOutput is the output schema for the get_media_items_batch tool.
type BatchGetOutput struct {
	Results []BatchEntryOutput `json:"results"`
	Failed  int                `json:"failed"`
}

// CreateAlbumInput is the input schema for the create_album tool.
type CreateAlbumInput struct {
	Title string `json:"title" jsonschema:"the title of the new album"`
}

// CreateAlbumOutput is the output schema for the create_album tool.
type CreateAlbumOutput struct {
	Album AlbumOutput `json:"album"`
}

// CacheStatsOutput is the output schema for the get_cache_stats tool.
type CacheStatsOutput struct {
	CacheSize            int            `json:"cache_size"`
	MaxSize              int            `json:"max_size"`
	ExpiredSwept         int            `json:"expired_swept"`
	DailyRequestCounts   map[string]int `json:"daily_request_counts"`
	BurstTokensRemaining int            `json:"burst_tokens_remaining"`
}

// ClearCacheOutput is the output schema for the clear_cache tool.
type ClearCacheOutput struct {
	Cleared bool `json:"cleared"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_albums",
		Description: "List albums in the Google Photos library",
	}, s.handleListAlbums)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_media_items",
		Description: "Search media items by content category, date range and media type",
	}, s.handleSearchMediaItems)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_media_item",
		Description: "Get a single media item by ID",
	}, s.handleGetMediaItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_media_items_batch",
		Description: "Get many media items in one call, with per-item results",
	}, s.handleGetMediaItemsBatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_album",
		Description: "Create a new album",
	}, s.handleCreateAlbum)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_cache_stats",
		Description: "Report client cache and quota statistics",
	}, s.handleGetCacheStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_cache",
		Description: "Clear all cached API responses",
	}, s.handleClearCache)
}

// handleListAlbums handles the list_albums tool invocation.
func (s *Server) handleListAlbums(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListAlbumsInput,
) (*mcp.CallToolResult, ListAlbumsOutput, error) {
	albums, err := s.ports.Photos.ListAlbums(ctx, input.MaxAlbums)
	if err != nil {
		return nil, ListAlbumsOutput{}, err
	}

	output := ListAlbumsOutput{
		Albums: make([]AlbumOutput, len(albums)),
		Count:  len(albums),
	}
	for i, a := range albums {
		output.Albums[i] = albumOutput(a)
	}
	return nil, output, nil
}

// handleSearchMediaItems handles the search_media_items tool invocation.
func (s *Server) handleSearchMediaItems(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	builder := photos.NewFilterBuilder()
	if len(input.Categories) > 0 {
		builder.WithCategories(input.Categories...)
	}
	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		builder.WithStartDate(start)
	}
	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		builder.WithEndDate(end)
	}
	for _, t := range input.MediaTypes {
		builder.WithMediaTypes(photos.MediaType(t))
	}

	filter, err := builder.Build()
	if err != nil {
		return nil, SearchOutput{}, err
	}

	items, err := s.ports.Photos.SearchMediaItems(ctx, filter, input.MaxItems)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Items: make([]MediaItemOutput, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		output.Items[i] = mediaItemOutput(item)
	}
	return nil, output, nil
}

// handleGetMediaItem handles the get_media_item tool invocation.
func (s *Server) handleGetMediaItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMediaItemInput,
) (*mcp.CallToolResult, GetMediaItemOutput, error) {
	item, err := s.ports.Photos.GetMediaItem(ctx, input.ID)
	if err != nil {
		return nil, GetMediaItemOutput{}, err
	}
	return nil, GetMediaItemOutput{Item: mediaItemOutput(item)}, nil
}

// handleGetMediaItemsBatch handles the get_media_items_batch tool invocation.
func (s *Server) handleGetMediaItemsBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchGetInput,
) (*mcp.CallToolResult, BatchGetOutput, error) {
	results, err := s.ports.Photos.GetMediaItemsBatch(ctx, input.IDs)
	if err != nil {
		return nil, BatchGetOutput{}, err
	}

	output := BatchGetOutput{
		Results: make([]BatchEntryOutput, len(results)),
	}
	for i, r := range results {
		entry := BatchEntryOutput{ID: r.ID}
		if r.Err != nil {
			entry.Error = r.Err.Error()
			output.Failed++
		} else {
			item := mediaItemOutput(r.Item)
			entry.Item = &item
		}
		output.Results[i] = entry
	}
	return nil, output, nil
}

// handleCreateAlbum handles the create_album tool invocation.
func (s *Server) handleCreateAlbum(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateAlbumInput,
) (*mcp.CallToolResult, CreateAlbumOutput, error) {
	album, err := s.ports.Photos.CreateAlbum(ctx, input.Title)
	if err != nil {
		return nil, CreateAlbumOutput{}, err
	}
	return nil, CreateAlbumOutput{Album: albumOutput(album)}, nil
}

// handleGetCacheStats handles the get_cache_stats tool invocation.
func (s *Server) handleGetCacheStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CacheStatsOutput, error) {
	stats := s.ports.Photos.GetCacheStats()
	return nil, CacheStatsOutput{
		CacheSize:            stats.CacheSize,
		MaxSize:              stats.MaxSize,
		ExpiredSwept:         stats.ExpiredSwept,
		DailyRequestCounts:   stats.DailyRequestCounts,
		BurstTokensRemaining: stats.BurstTokensRemaining,
	}, nil
}

// handleClearCache handles the clear_cache tool invocation.
func (s *Server) handleClearCache(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ClearCacheOutput, error) {
	s.ports.Photos.ClearCache()
	return nil, ClearCacheOutput{Cleared: true}, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("mcp: invalid date %q (want YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}

func albumOutput(a *photos.Album) AlbumOutput {
	return AlbumOutput{
		ID:         a.ID,
		Title:      a.Title,
		ProductURL: a.ProductURL,
		ItemCount:  a.ItemCount,
	}
}

func mediaItemOutput(item *photos.MediaItem) MediaItemOutput {
	out := MediaItemOutput{
		ID:          item.ID,
		Filename:    item.Filename,
		Description: item.Description,
		MimeType:    item.MimeType,
		ProductURL:  item.ProductURL,
	}
	if item.Metadata != nil {
		out.CreationTime = item.Metadata.CreationTime
	}
	return out
}
