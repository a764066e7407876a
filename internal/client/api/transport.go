package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/stis-apps/titiktemu/internal/logging"
)

// SessionStore is the slice of the session store the transport needs.
type SessionStore interface {
	GetToken(ctx context.Context) string
	ClearAll(ctx context.Context) error
}

// authTransport is the single choke point every outbound request passes
// through. It attaches the stored bearer token and turns a 401/403 on an
// authenticated endpoint into a wiped session plus ErrUnauthorized, so
// no repository has to re-implement expiry handling.
type authTransport struct {
	base  http.RoundTripper
	store SessionStore
	log   logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// A failed token read is treated as "no token": the request still
	// goes out, just unauthenticated.
	if token := t.store.GetToken(ctx); token != "" {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) &&
		!isAuthEndpoint(req.URL.Path) {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if cerr := t.store.ClearAll(ctx); cerr != nil {
			t.log.Error(ctx, "failed to clear session after rejection", "error", cerr)
		}
		t.log.Warn(ctx, "token rejected, session invalidated",
			"status", resp.StatusCode, "path", req.URL.Path)
		return nil, ErrUnauthorized
	}

	return resp, nil
}

// isAuthEndpoint reports whether the path belongs to login/registration.
// A 401 there means bad credentials, not an expired session, and must
// reach the repository as an ordinary status error.
func isAuthEndpoint(path string) bool {
	return strings.HasSuffix(path, "/auth/login") || strings.HasSuffix(path, "/auth/register")
}
