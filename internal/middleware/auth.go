package middleware

import (
	"net/http"

	"qualitywash.cl/web/internal/guard"
	"qualitywash.cl/web/internal/token"
)

// Guard gates a route on the given view's access rule. Session and role are
// read fresh on every request; a denied navigation is redirected, never
// rendered.
func Guard(v guard.View) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd := GetSession(r)
			gs := guard.Session{LoggedIn: sd.LoggedIn}
			role := token.RoleOf(sd.Token)
			if !guard.CanEnter(v, gs, role) {
				http.Redirect(w, r, guard.DenyTarget(v, gs), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin reports whether the current session's credential decodes to the
// admin role. Display gating only; backends enforce the real authorization.
func IsAdmin(r *http.Request) bool {
	sd := GetSession(r)
	return sd.LoggedIn && token.RoleOf(sd.Token) == token.RoleAdmin
}
