package photos

import "context"

// Executor is the narrow network collaborator behind the caching
// client. Implementations perform the actual Photos Library API
// calls; the client never touches the wire directly.
//
// Executors do no caching, no rate limiting, and no retries. Transport
// failures propagate unchanged — retry policy belongs to the caller,
// which knows its own idempotency assumptions.
type Executor interface {
	// ListAlbums fetches one page of albums.
	ListAlbums(ctx context.Context, pageSize int, pageToken string) (albums []*Album, nextPageToken string, err error)

	// SearchMediaItems fetches one page of media items matching the filter.
	SearchMediaItems(ctx context.Context, filter SearchFilter, pageSize int, pageToken string) (items []*MediaItem, nextPageToken string, err error)

	// GetMediaItem fetches a single media item by ID.
	GetMediaItem(ctx context.Context, id string) (*MediaItem, error)

	// BatchGetMediaItems fetches up to MaxBatchSize media items in one
	// call. The result slice is positional with the requested IDs and
	// carries per-item failures; a failed item never fails the batch.
	BatchGetMediaItems(ctx context.Context, ids []string) ([]BatchResult, error)

	// CreateAlbum creates a new album with the given title.
	CreateAlbum(ctx context.Context, title string) (*Album, error)
}
