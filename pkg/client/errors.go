package client

import (
	"errors"
	"fmt"
)

var (
	// ErrAnimalNotFound is returned when a chip lookup does not resolve to
	// exactly one animal. Several matches are treated the same as none.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrNoAuthorization is returned when the authenticate endpoint answers
	// 200 without an Authorization header.
	ErrNoAuthorization = errors.New("authenticate response has no Authorization header")
)

// HTTPError represents an unexpected HTTP status from the registry.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
