package photos

import (
	"fmt"
	"strings"
	"time"
)

// MediaType restricts a search to photos or videos.
type MediaType string

const (
	// MediaTypePhoto matches still photos.
	MediaTypePhoto MediaType = "PHOTO"
	// MediaTypeVideo matches videos.
	MediaTypeVideo MediaType = "VIDEO"
)

// SearchFilter is an immutable search predicate. Build one with
// NewFilterBuilder; the zero value matches everything.
type SearchFilter struct {
	// Categories holds upper-cased content category names.
	Categories map[string]struct{}
	// StartDate and EndDate bound item creation time. Either may be
	// set independently.
	StartDate *time.Time
	EndDate   *time.Time
	// MediaTypes restricts results to photos and/or videos.
	MediaTypes map[MediaType]struct{}
}

// IsEmpty returns true if no predicate was set.
func (f SearchFilter) IsEmpty() bool {
	return len(f.Categories) == 0 && f.StartDate == nil && f.EndDate == nil && len(f.MediaTypes) == 0
}

// FilterBuilder accumulates search predicates. Every With method is
// optional and chainable; Build snapshots the accumulated state, so
// a builder can keep being used after Build without affecting filters
// already handed out.
type FilterBuilder struct {
	categories map[string]struct{}
	startDate  *time.Time
	endDate    *time.Time
	mediaTypes map[MediaType]struct{}
}

// NewFilterBuilder creates an empty builder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		categories: make(map[string]struct{}),
		mediaTypes: make(map[MediaType]struct{}),
	}
}

// WithCategories adds content categories. Values are upper-cased so
// "people" and "PEOPLE" build identical filters.
func (b *FilterBuilder) WithCategories(categories ...string) *FilterBuilder {
	for _, c := range categories {
		b.categories[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	return b
}

// WithStartDate bounds item creation time from below.
func (b *FilterBuilder) WithStartDate(start time.Time) *FilterBuilder {
	b.startDate = &start
	return b
}

// WithEndDate bounds item creation time from above.
func (b *FilterBuilder) WithEndDate(end time.Time) *FilterBuilder {
	b.endDate = &end
	return b
}

// WithMediaTypes restricts results to the given media types.
func (b *FilterBuilder) WithMediaTypes(types ...MediaType) *FilterBuilder {
	for _, t := range types {
		b.mediaTypes[MediaType(strings.ToUpper(string(t)))] = struct{}{}
	}
	return b
}

// Build validates the accumulated predicates and returns an immutable
// snapshot. Malformed input fails here, before any cache or network
// interaction.
func (b *FilterBuilder) Build() (SearchFilter, error) {
	for c := range b.categories {
		if c == "" {
			return SearchFilter{}, fmt.Errorf("%w: blank content category", ErrInvalidFilter)
		}
	}
	for t := range b.mediaTypes {
		if t != MediaTypePhoto && t != MediaTypeVideo {
			return SearchFilter{}, fmt.Errorf("%w: unknown media type %q", ErrInvalidFilter, t)
		}
	}
	if b.startDate != nil && b.endDate != nil && b.startDate.After(*b.endDate) {
		return SearchFilter{}, fmt.Errorf("%w: start date after end date", ErrInvalidFilter)
	}

	filter := SearchFilter{}
	if len(b.categories) > 0 {
		filter.Categories = make(map[string]struct{}, len(b.categories))
		for c := range b.categories {
			filter.Categories[c] = struct{}{}
		}
	}
	if len(b.mediaTypes) > 0 {
		filter.MediaTypes = make(map[MediaType]struct{}, len(b.mediaTypes))
		for t := range b.mediaTypes {
			filter.MediaTypes[t] = struct{}{}
		}
	}
	if b.startDate != nil {
		start := *b.startDate
		filter.StartDate = &start
	}
	if b.endDate != nil {
		end := *b.endDate
		filter.EndDate = &end
	}
	return filter, nil
}
