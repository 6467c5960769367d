package photos

import (
	"errors"
	"fmt"
)

// Photos-specific errors.
var (
	// ErrInvalidFilter indicates the filter builder was given
	// contradictory or malformed input. Raised at Build time, before
	// any cache or network interaction.
	ErrInvalidFilter = errors.New("photos: invalid search filter")

	// ErrMissingID indicates a media item lookup with a blank ID.
	ErrMissingID = errors.New("photos: media item ID required")

	// ErrMissingTitle indicates album creation with a blank title.
	ErrMissingTitle = errors.New("photos: album title required")
)

// QuotaExceededError indicates the daily request quota is spent.
// It is fatal for the remainder of the day; the client never retries
// it internally and callers must not either.
type QuotaExceededError struct {
	Day   string
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("photos: daily quota of %d requests exceeded for %s", e.Limit, e.Day)
}

// IsQuotaExceeded checks if the error indicates daily quota exhaustion.
func IsQuotaExceeded(err error) bool {
	var qerr *QuotaExceededError
	return errors.As(err, &qerr)
}
