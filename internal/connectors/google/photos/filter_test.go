package photos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterBuilder_Build(t *testing.T) {
	t.Run("empty builder builds an empty filter", func(t *testing.T) {
		filter, err := NewFilterBuilder().Build()
		require.NoError(t, err)
		assert.True(t, filter.IsEmpty())
	})

	t.Run("categories are upper-cased", func(t *testing.T) {
		lower, err := NewFilterBuilder().WithCategories("people", "landscapes").Build()
		require.NoError(t, err)
		upper, err := NewFilterBuilder().WithCategories("PEOPLE", "LANDSCAPES").Build()
		require.NoError(t, err)

		assert.Equal(t, lower.Categories, upper.Categories)
		assert.Equal(t, lower.canonical(), upper.canonical())
	})

	t.Run("calls are chainable and independently optional", func(t *testing.T) {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		filter, err := NewFilterBuilder().
			WithCategories("pets").
			WithStartDate(start).
			WithMediaTypes(MediaTypePhoto).
			Build()
		require.NoError(t, err)

		assert.Contains(t, filter.Categories, "PETS")
		require.NotNil(t, filter.StartDate)
		assert.Nil(t, filter.EndDate)
		assert.Contains(t, filter.MediaTypes, MediaTypePhoto)
	})

	t.Run("either date bound may be set alone", func(t *testing.T) {
		end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		filter, err := NewFilterBuilder().WithEndDate(end).Build()
		require.NoError(t, err)
		assert.Nil(t, filter.StartDate)
		require.NotNil(t, filter.EndDate)
	})

	t.Run("start after end fails fast", func(t *testing.T) {
		_, err := NewFilterBuilder().
			WithStartDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).
			WithEndDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
			Build()
		require.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("unknown media type fails fast", func(t *testing.T) {
		_, err := NewFilterBuilder().WithMediaTypes("GIF").Build()
		require.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("media types are case-normalised", func(t *testing.T) {
		filter, err := NewFilterBuilder().WithMediaTypes("video").Build()
		require.NoError(t, err)
		assert.Contains(t, filter.MediaTypes, MediaTypeVideo)
	})

	t.Run("blank category fails fast", func(t *testing.T) {
		_, err := NewFilterBuilder().WithCategories("  ").Build()
		require.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("built filter is a snapshot, not a view of the builder", func(t *testing.T) {
		builder := NewFilterBuilder().WithCategories("people")
		filter, err := builder.Build()
		require.NoError(t, err)

		builder.WithCategories("pets")

		assert.Len(t, filter.Categories, 1)
		assert.NotContains(t, filter.Categories, "PETS")
	})
}

func TestSearchFilter_Canonical(t *testing.T) {
	t.Run("insertion order does not matter", func(t *testing.T) {
		a, err := NewFilterBuilder().
			WithCategories("travel", "people").
			WithMediaTypes(MediaTypeVideo, MediaTypePhoto).
			Build()
		require.NoError(t, err)
		b, err := NewFilterBuilder().
			WithMediaTypes(MediaTypePhoto, MediaTypeVideo).
			WithCategories("PEOPLE", "TRAVEL").
			Build()
		require.NoError(t, err)

		assert.Equal(t, a.canonical(), b.canonical())
	})

	t.Run("different filters canonicalise differently", func(t *testing.T) {
		a, err := NewFilterBuilder().WithCategories("people").Build()
		require.NoError(t, err)
		b, err := NewFilterBuilder().WithCategories("pets").Build()
		require.NoError(t, err)

		assert.NotEqual(t, a.canonical(), b.canonical())
	})
}

func TestCacheKeys(t *testing.T) {
	t.Run("batch key is order-independent", func(t *testing.T) {
		assert.Equal(t, batchKey([]string{"x", "y"}), batchKey([]string{"y", "x"}))
	})

	t.Run("distinct batches get distinct keys", func(t *testing.T) {
		assert.NotEqual(t, batchKey([]string{"x"}), batchKey([]string{"x", "y"}))
	})

	t.Run("album list keys share the family prefix", func(t *testing.T) {
		assert.Contains(t, albumListKey(10), keyPrefixAlbumList)
		assert.NotEqual(t, albumListKey(10), albumListKey(50))
	})
}
