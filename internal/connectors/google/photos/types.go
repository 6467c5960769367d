package photos

// Album is a Photos library album.
type Album struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ProductURL  string `json:"productUrl,omitempty"`
	ItemCount   int64  `json:"mediaItemsCount,string,omitempty"`
	IsWriteable bool   `json:"isWriteable,omitempty"`
}

// MediaItem is a single photo or video in the library.
type MediaItem struct {
	ID          string         `json:"id"`
	Description string         `json:"description,omitempty"`
	ProductURL  string         `json:"productUrl,omitempty"`
	BaseURL     string         `json:"baseUrl,omitempty"`
	MimeType    string         `json:"mimeType,omitempty"`
	Filename    string         `json:"filename,omitempty"`
	Metadata    *MediaMetadata `json:"mediaMetadata,omitempty"`
}

// MediaMetadata carries capture-time metadata for a media item.
type MediaMetadata struct {
	CreationTime string `json:"creationTime,omitempty"`
	Width        int64  `json:"width,string,omitempty"`
	Height       int64  `json:"height,string,omitempty"`
}

// BatchResult is the outcome for one requested ID in a batch get.
// Exactly one of Item or Err is set. A failed item never fails the
// batch it belongs to.
type BatchResult struct {
	ID   string
	Item *MediaItem
	Err  error
}

// CacheStats is a point-in-time snapshot of the client's cache and
// quota state. Taking a snapshot sweeps expired entries first, so
// CacheSize counts live entries only.
type CacheStats struct {
	CacheSize            int
	MaxSize              int
	ExpiredSwept         int
	DailyRequestCounts   map[string]int
	BurstTokensRemaining int
}
