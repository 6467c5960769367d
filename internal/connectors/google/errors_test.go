package google

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWrapError(t *testing.T) {
	t.Run("maps known status codes to sentinels", func(t *testing.T) {
		tests := []struct {
			code int
			want error
		}{
			{http.StatusUnauthorized, ErrUnauthorized},
			{http.StatusForbidden, ErrForbidden},
			{http.StatusNotFound, ErrNotFound},
			{http.StatusTooManyRequests, ErrRateLimited},
		}

		for _, tt := range tests {
			err := WrapError(&googleapi.Error{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		}
	})

	t.Run("passes through unknown errors", func(t *testing.T) {
		cause := errors.New("boom")
		assert.Equal(t, cause, WrapError(cause))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapError(nil))
	})
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(&googleapi.Error{Code: 404}))
	assert.True(t, IsRateLimited(&googleapi.Error{Code: 429}))
	assert.True(t, IsUnauthorized(ErrUnauthorized))
	assert.True(t, IsForbidden(&googleapi.Error{Code: 403}))
	assert.False(t, IsNotFound(errors.New("boom")))
}
