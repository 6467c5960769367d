package photos

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cache key families. Keys are deterministic, human-readable strings
// built per method from the arguments that participate in each query,
// so semantically identical calls collide and write invalidation is a
// prefix match. No reflection, no generic argument hashing.
const (
	keyPrefixAlbumList = "albums.list"
	keyPrefixMediaItem = "mediaItems.get"
	keyPrefixBatch     = "mediaItems.batch"
	keyPrefixSearch    = "mediaItems.search"
)

func albumListKey(maxAlbums int) string {
	return fmt.Sprintf("%s|max=%d", keyPrefixAlbumList, maxAlbums)
}

func mediaItemKey(id string) string {
	return keyPrefixMediaItem + "|" + id
}

// batchKey is order-independent: the same set of IDs produces the
// same key regardless of the order the caller listed them in.
func batchKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return keyPrefixBatch + "|" + strings.Join(sorted, ",")
}

func searchKey(filter SearchFilter, maxItems int) string {
	return fmt.Sprintf("%s|%s|max=%d", keyPrefixSearch, filter.canonical(), maxItems)
}

// canonical renders the filter as a stable string: sets are sorted,
// absent fields render as "-". Two filters built from the same inputs
// in any order produce the same canonical form.
func (f SearchFilter) canonical() string {
	categories := make([]string, 0, len(f.Categories))
	for c := range f.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	types := make([]string, 0, len(f.MediaTypes))
	for t := range f.MediaTypes {
		types = append(types, string(t))
	}
	sort.Strings(types)

	start, end := "-", "-"
	if f.StartDate != nil {
		start = f.StartDate.UTC().Format(time.RFC3339)
	}
	if f.EndDate != nil {
		end = f.EndDate.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("cat=%s;range=%s..%s;types=%s",
		strings.Join(categories, ","), start, end, strings.Join(types, ","))
}
