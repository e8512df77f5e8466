package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by APIErrors carrying HTTP 404.
var ErrNotFound = errors.New("tmdb: resource not found")

// APIError is a non-2xx answer from TMDB. Code and Message come from the
// {status_code, status_message} body when TMDB sends one.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"status_code"`
	Message    string `json:"status_message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb HTTP %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("tmdb HTTP %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
