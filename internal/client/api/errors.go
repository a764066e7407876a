package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

var (
	// ErrUnauthorized signals that the stored token was rejected by the
	// backend on an authenticated endpoint. By the time a caller observes
	// it the session store has already been wiped; callers must treat it
	// as "return to login", never as an ordinary request failure.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable signals that the server could not be reached at all
	// (DNS failure, refused connection).
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout signals that the request exceeded its time budget.
	ErrTimeout = errors.New("request timed out")
)

// StatusError is a non-2xx response that reached the caller. Body holds
// the backend's error envelope when it was parseable, zero otherwise.
type StatusError struct {
	Code int
	Body models.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.Body.Message)
	}
	return fmt.Sprintf("http %d", e.Code)
}

func newStatusError(code int, body []byte) *StatusError {
	se := &StatusError{Code: code}
	// best effort: the envelope is {message, error, status} when the
	// backend produced it, anything at all when a proxy did
	_ = json.Unmarshal(body, &se.Body)
	return se
}
