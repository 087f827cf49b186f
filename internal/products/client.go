// Package products talks to the product service: the public catalog plus the
// admin CRUD operations. Field names on the wire follow the backend contract.
// Without a configured base URL the client runs against an in-memory catalog
// seeded with the standard laundry line-up.
package products

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"qualitywash.cl/web/internal/backend"
)

const basePath = "/api/productos"

// Product is a catalog record as the product service stores it.
type Product struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"nombre"`
	Kind        string  `json:"tipo"`
	Stock       string  `json:"stock"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	ImageURL    string  `json:"imagenUrl,omitempty"`
}

// Client issues calls against the product service.
type Client struct {
	baseURL string
	http    *http.Client
	fake    *fakeCatalog
}

// NewClient builds a product service client. An empty baseURL enables the
// in-memory fake catalog.
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    backend.NewHTTPClient(),
	}
	if c.baseURL == "" {
		c.fake = newFakeCatalog()
	}
	return c
}

// List fetches the whole catalog. A null body maps to an empty slice.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	if c.fake != nil {
		return c.fake.list(), nil
	}
	var out []Product
	if err := backend.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+basePath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Product{}
	}
	return out, nil
}

// ByID fetches one product.
func (c *Client) ByID(ctx context.Context, id int) (Product, error) {
	if c.fake != nil {
		return c.fake.byID(id)
	}
	var p Product
	err := backend.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+basePath+"/"+strconv.Itoa(id), nil, &p)
	return p, err
}

// Create adds a product to the catalog.
func (c *Client) Create(ctx context.Context, p Product) (Product, error) {
	if c.fake != nil {
		return c.fake.create(p), nil
	}
	p.ID = 0
	var created Product
	err := backend.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+basePath, p, &created)
	return created, err
}

// Update replaces the product with the given id.
func (c *Client) Update(ctx context.Context, id int, p Product) (Product, error) {
	if c.fake != nil {
		return c.fake.update(id, p)
	}
	var updated Product
	err := backend.DoJSON(ctx, c.http, http.MethodPut, c.baseURL+basePath+"/"+strconv.Itoa(id), p, &updated)
	return updated, err
}

// Delete removes the product with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	if c.fake != nil {
		return c.fake.remove(id)
	}
	return backend.DoJSON(ctx, c.http, http.MethodDelete, c.baseURL+basePath+"/"+strconv.Itoa(id), nil, nil)
}
