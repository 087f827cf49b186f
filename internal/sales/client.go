// Package sales records checkout receipts (boletas) with the sales service.
//
// Checkout itself is local and authoritative: the cart result is computed and
// reported before any network call, and a receipt is only recorded
// best-effort afterwards. A sales failure never reaches the customer.
package sales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"qualitywash.cl/web/internal/backend"
)

const (
	basePath          = "/ventas"
	idempotencyHeader = "Idempotency-Key"
)

// LineItem is one cart line inside a receipt.
type LineItem struct {
	ProductID int     `json:"productoId"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
}

// Receipt is the boleta payload for a completed checkout.
type Receipt struct {
	ClientID    int        `json:"clienteId,omitempty"`
	ClientEmail string     `json:"clienteEmail,omitempty"`
	Items       []LineItem `json:"items"`
	Total       float64    `json:"total"`
}

// Created carries the stored receipt id.
type Created struct {
	ID int `json:"id"`
}

// Client issues receipt calls against the sales service. With no base URL it
// acknowledges locally.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    backend.NewHTTPClient(),
	}
}

// Enabled reports whether a sales service is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// CreateReceipt records a boleta. Each call carries a fresh idempotency key
// so the sales service can dedupe retried deliveries.
func (c *Client) CreateReceipt(ctx context.Context, r Receipt) (Created, error) {
	if !c.Enabled() {
		return Created{ID: 0}, nil
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return Created{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+basePath+"/boleta", bytes.NewReader(payload))
	if err != nil {
		return Created{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(idempotencyHeader, uuid.NewString())
	if tok := backend.Bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Created{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Created{}, fmt.Errorf("sales: boleta status %d: %s", resp.StatusCode, drain(resp.Body))
	}
	var created Created
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Created{}, err
	}
	return created, nil
}

func drain(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
