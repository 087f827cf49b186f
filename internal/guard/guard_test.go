package guard

import (
	"testing"

	"qualitywash.cl/web/internal/token"
)

func TestAccessMatrix(t *testing.T) {
	anon := Session{}
	user := Session{LoggedIn: true}

	cases := []struct {
		name string
		view View
		sess Session
		role token.Role
		want bool
	}{
		{"auth open to anonymous", ViewAuth, anon, token.RoleNonAdmin, true},
		{"auth open to logged in", ViewAuth, user, token.RoleNonAdmin, true},
		{"dashboard needs login", ViewDashboard, anon, token.RoleNonAdmin, false},
		{"dashboard with login", ViewDashboard, user, token.RoleNonAdmin, true},
		{"store needs login", ViewStore, anon, token.RoleNonAdmin, false},
		{"profile with login", ViewProfile, user, token.RoleNonAdmin, true},
		{"contact needs login", ViewContact, anon, token.RoleAdmin, false},
		{"admin denies non-admin", ViewAdminProducts, user, token.RoleNonAdmin, false},
		{"admin allows admin", ViewAdminProducts, user, token.RoleAdmin, true},
		{"admin role without login denied", ViewAdminProducts, anon, token.RoleAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanEnter(tc.view, tc.sess, tc.role); got != tc.want {
				t.Fatalf("CanEnter(%s) = %v, want %v", tc.view, got, tc.want)
			}
		})
	}
}

func TestDenyTarget(t *testing.T) {
	if got := DenyTarget(ViewStore, Session{}); got != "/login" {
		t.Fatalf("anonymous deny target = %q, want /login", got)
	}
	if got := DenyTarget(ViewAdminProducts, Session{LoggedIn: true}); got != "/dashboard" {
		t.Fatalf("logged-in deny target = %q, want /dashboard", got)
	}
}

func TestLanding(t *testing.T) {
	if got := Landing(false); got != "/login" {
		t.Fatalf("anonymous landing = %q", got)
	}
	if got := Landing(true); got != "/dashboard" {
		t.Fatalf("logged-in landing = %q", got)
	}
}
