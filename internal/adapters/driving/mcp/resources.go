package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for gphotos resources.
const uriScheme = "gphotos://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for client cache and quota statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Cache and quota statistics for the Photos client",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Template for individual media items.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "media/{mediaItemId}",
		Name:        "media-item",
		Description: "Metadata for a specific media item",
		MIMEType:    "application/json",
	}, s.handleMediaItemResource)
}

// handleStatsResource returns cache and quota statistics.
func (s *Server) handleStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Photos.GetCacheStats()

	data, err := json.MarshalIndent(CacheStatsOutput{
		CacheSize:            stats.CacheSize,
		MaxSize:              stats.MaxSize,
		ExpiredSwept:         stats.ExpiredSwept,
		DailyRequestCounts:   stats.DailyRequestCounts,
		BurstTokensRemaining: stats.BurstTokensRemaining,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleMediaItemResource returns metadata for a specific media item.
func (s *Server) handleMediaItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract mediaItemId from URI: gphotos://media/{mediaItemId}
	id := extractMediaItemID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item, err := s.ports.Photos.GetMediaItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting media item: %w", err)
	}

	data, err := json.MarshalIndent(mediaItemOutput(item), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling media item: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMediaItemID extracts the ID from a URI like gphotos://media/{mediaItemId}.
func extractMediaItemID(uri string) string {
	const prefix = uriScheme + "media/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
