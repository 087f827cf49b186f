// Package backend is the shared JSON-over-HTTP plumbing for the four service
// clients. Every call carries the session's bearer token when one is present
// in the context, and every non-2xx response surfaces as a *StatusError so
// handlers can show the failure code next to a generic message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend round trip.
const DefaultTimeout = 8 * time.Second

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.Status)
	}
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Message)
}

// StatusOf extracts the HTTP-like failure code from err, 0 when absent.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

type ctxKey struct{}

// WithBearer stores the session's credential token for outgoing calls.
func WithBearer(ctx context.Context, token string) context.Context {
	if strings.TrimSpace(token) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, token)
}

// Bearer returns the token placed by WithBearer, if any.
func Bearer(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

// NewHTTPClient builds the http.Client used by the service clients.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// DoJSON issues a JSON request and decodes the response into out (skipped for
// a nil out or a 204). The error body's "message" field, when present, becomes
// the StatusError message.
func DoJSON(ctx context.Context, hc *http.Client, method, url string, body, out any) error {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := Bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func errorMessage(resp *http.Response) string {
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "application/json") {
		var body struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
