// Package nav defines the authenticated top navigation and its active state.
package nav

import "strings"

// Item is a top-level navigation entry.
type Item struct {
	Path     string
	LabelKey string
	// AdminOnly entries are offered only when the session's role allows the
	// target view; the route guard still decides on navigation.
	AdminOnly bool
}

// RenderedItem is the template-facing view of an Item.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/dashboard", LabelKey: "nav.dashboard"},
	{Path: "/store", LabelKey: "nav.store"},
	{Path: "/profile", LabelKey: "nav.profile"},
	{Path: "/contact", LabelKey: "nav.contact"},
	{Path: "/admin/products", LabelKey: "nav.admin", AdminOnly: true},
}

// Build renders the navigation for the current path, including admin entries
// only for admin sessions.
func Build(currentPath string, admin bool) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		if it.AdminOnly && !admin {
			continue
		}
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == currentPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
