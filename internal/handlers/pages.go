// Package handlers holds the view models shared by the page handlers and the
// layout templates.
package handlers

import (
	"qualitywash.cl/web/internal/nav"
)

// PageData is the generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics

	Path string
	Nav  []nav.RenderedItem

	LoggedIn  bool
	Admin     bool
	UserName  string
	UserEmail string
	CartCount int
	CSRFToken string

	// Optional per-page view model payloads
	Auth      any
	Dashboard any
	Store     any
	Profile   any
	Contact   any
	AdminView any
	Status    any
}

// SEOData feeds the head partial.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          struct {
		Title       string
		Description string
		Image       string
		Type        string
		URL         string
		SiteName    string
	}
	Twitter struct {
		Card  string
		Site  string
		Image string
	}
}
