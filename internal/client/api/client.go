// Package api implements the typed HTTP client for the TitikTemu REST
// backend: one http.Client wrapped by the auth transport, plus endpoint
// groups for auth, users and reports.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/stis-apps/titiktemu/internal/client/upload"
	"github.com/stis-apps/titiktemu/internal/logging"
)

// DefaultTimeout bounds every request end to end.
const DefaultTimeout = 30 * time.Second

// Client talks to the backend. Construct exactly one per process and
// pass it down; it is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

// New builds a Client for the API rooted at baseURL (e.g.
// "http://10.38.81.165:8080/api"). Every request flows through the auth
// transport backed by store. A zero timeout selects DefaultTimeout.
func New(baseURL string, store SessionStore, log logging.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		httpc: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:  http.DefaultTransport,
				store: store,
				log:   log,
			},
		},
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart sends fields plus an optional photo part as
// multipart/form-data. The photo part is named "photo" and carries the
// staged file's sniffed content type.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, photo *upload.Staged, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to encode field %s: %w", name, err)
		}
	}

	if photo != nil {
		f, err := photo.Open()
		if err != nil {
			return fmt.Errorf("failed to open staged photo: %w", err)
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="photo"; filename=%q`, photo.Name()))
		h.Set("Content-Type", photo.ContentType())

		part, err := w.CreatePart(h)
		if err == nil {
			_, err = io.Copy(part, f)
		}
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to encode photo part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.mapError(req, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug(req.Context(), "request finished",
		"method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 400 {
		return newStatusError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapError normalizes transport-level failures into the package's
// sentinel errors. Status-carrying responses never reach here.
func (c *Client) mapError(req *http.Request, err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrUnavailable
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrUnavailable
	}

	c.log.Error(req.Context(), "request failed",
		"method", req.Method, "path", req.URL.Path, "error", err)
	return fmt.Errorf("request failed: %w", err)
}
