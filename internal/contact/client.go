// Package contact submits contact-form messages to the contact service.
package contact

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"

	"qualitywash.cl/web/internal/backend"
)

const basePath = "/contactos"

// Submission is a contact-form message.
type Submission struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Message string `json:"mensaje"`
}

// Receipt acknowledges a stored submission.
type Receipt struct {
	ID int `json:"id"`
}

// Client issues calls against the contact service. An empty base URL enables
// a local acknowledging fake.
type Client struct {
	baseURL string
	http    *http.Client
	fakeSeq atomic.Int64
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    backend.NewHTTPClient(),
	}
}

// Submit stores the message and returns its receipt.
func (c *Client) Submit(ctx context.Context, s Submission) (Receipt, error) {
	if c.baseURL == "" {
		return Receipt{ID: int(c.fakeSeq.Add(1))}, nil
	}
	var r Receipt
	err := backend.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+basePath, s, &r)
	return r, err
}
