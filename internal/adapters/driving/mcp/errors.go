// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the Photos client. It lets AI assistants browse and search a
// Google Photos library through the quota-aware caching client.
package mcp

import "errors"

// ErrMissingPhotosService is returned when the photos service is not provided.
var ErrMissingPhotosService = errors.New("mcp: photos service is required")
