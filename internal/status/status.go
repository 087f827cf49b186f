// Package status summarizes the health of the backend services for the
// /status page. Probes are shallow reachability checks; unconfigured
// services report as running in demo mode.
package status

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Service names one backend and its base URL ("" when unconfigured).
type Service struct {
	Name    string
	BaseURL string
}

// Component is the probed state of one service.
type Component struct {
	Name   string
	Status string // "operational", "down", "demo"
}

// Summary is the aggregate for rendering.
type Summary struct {
	State      string // "ok", "degraded", "demo"
	Components []Component
	CheckedAt  time.Time
}

// Client probes the configured services, caching the result briefly so the
// status page cannot hammer the backends.
type Client struct {
	services []Service
	http     *http.Client

	mu      sync.Mutex
	cached  Summary
	expires time.Time
	ttl     time.Duration
}

func NewClient(services []Service) *Client {
	return &Client{
		services: services,
		http:     &http.Client{Timeout: 3 * time.Second},
		ttl:      time.Minute,
	}
}

// SetTTL overrides the cache duration (primarily for tests).
func (c *Client) SetTTL(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// Summary probes every service, serving a cached result when fresh.
func (c *Client) Summary(ctx context.Context) Summary {
	c.mu.Lock()
	if time.Now().Before(c.expires) {
		s := c.cached
		c.mu.Unlock()
		return s
	}
	c.mu.Unlock()

	s := Summary{CheckedAt: time.Now(), State: "ok"}
	demo := 0
	for _, svc := range c.services {
		comp := Component{Name: svc.Name, Status: "operational"}
		switch {
		case strings.TrimSpace(svc.BaseURL) == "":
			comp.Status = "demo"
			demo++
		case !c.reachable(ctx, svc.BaseURL):
			comp.Status = "down"
			s.State = "degraded"
		}
		s.Components = append(s.Components, comp)
	}
	if s.State == "ok" && demo == len(c.services) && demo > 0 {
		s.State = "demo"
	}

	c.mu.Lock()
	c.cached = s
	c.expires = time.Now().Add(c.ttl)
	c.mu.Unlock()
	return s
}

// reachable treats any HTTP response, even an error status, as a sign of
// life; only transport failures count as down.
func (c *Client) reachable(ctx context.Context, baseURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
