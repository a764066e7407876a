// Package repositories translates API calls plus persistence side effects
// into resource values. Every failure except the distinguished
// unauthorized error is folded into a presentable Resource error here, so
// view-models never touch raw transport errors.
package repositories

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// Connectivity messages shared by every operation.
const (
	MsgNoConnection = "Cannot reach the server. Check your internet connection."
	MsgTimeout      = "Request timed out. Please try again."
)

// statusMessages maps HTTP status codes to user-facing messages for one
// operation.
type statusMessages map[int]string

// classify renders err as a presentable message. Precedence: connectivity
// sentinels, then a parseable validation message for 400s, then the
// operation's status table, then the backend's own message, then a
// status-coded generic.
func classify(err error, table statusMessages, fallback string) string {
	var se *api.StatusError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return MsgNoConnection
	case errors.Is(err, api.ErrTimeout):
		return MsgTimeout
	case errors.As(err, &se):
		if se.Code == http.StatusBadRequest && se.Body.Message != "" {
			return se.Body.Message
		}
		if msg, ok := table[se.Code]; ok {
			return msg
		}
		if se.Body.Message != "" {
			return se.Body.Message
		}
		return fmt.Sprintf("%s (%d)", fallback, se.Code)
	default:
		return fmt.Sprintf("%s: %v", fallback, err)
	}
}

// failure converts err into a terminal Resource, letting the
// distinguished unauthorized error pass through untouched so the caller
// can run the forced-logout flow.
func failure[T any](err error, table statusMessages, fallback string) (resource.Resource[T], error) {
	if errors.Is(err, api.ErrUnauthorized) {
		return resource.Idle[T](), err
	}
	return resource.Error[T](classify(err, table, fallback)), nil
}
