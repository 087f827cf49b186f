// Package guard decides whether a session may enter a view. It is pure:
// session state and role are injected by the caller, nothing ambient is read,
// so the gating rules stay testable in isolation.
package guard

import "qualitywash.cl/web/internal/token"

// View names every navigable screen of the application.
type View string

const (
	ViewAuth          View = "auth"
	ViewDashboard     View = "dashboard"
	ViewStore         View = "store"
	ViewProfile       View = "profile"
	ViewContact       View = "contact"
	ViewAdminProducts View = "admin-products"
)

// Session is the slice of session state the guard cares about.
type Session struct {
	LoggedIn bool
}

type level int

const (
	levelPublic level = iota
	levelUser
	levelAdmin
)

func requirement(v View) level {
	switch v {
	case ViewAuth:
		return levelPublic
	case ViewAdminProducts:
		return levelAdmin
	default:
		return levelUser
	}
}

// CanEnter reports whether the session/role pair may render the view.
// It is evaluated on every navigation, never cached, so a role change after
// re-login is honored on the next request.
func CanEnter(v View, s Session, r token.Role) bool {
	switch requirement(v) {
	case levelPublic:
		return true
	case levelUser:
		return s.LoggedIn
	default:
		return s.LoggedIn && r == token.RoleAdmin
	}
}

// DenyTarget is where a denied navigation redirects: the login view when the
// session is anonymous, the dashboard when it is merely missing the admin role.
func DenyTarget(v View, s Session) string {
	if !s.LoggedIn {
		return "/login"
	}
	return "/dashboard"
}

// Landing resolves unknown or root paths: dashboard for authenticated
// sessions, the auth view otherwise.
func Landing(loggedIn bool) string {
	if loggedIn {
		return "/dashboard"
	}
	return "/login"
}
