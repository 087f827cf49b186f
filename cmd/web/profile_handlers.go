package main

import (
	"log"
	"net/http"

	"qualitywash.cl/web/internal/backend"
	"qualitywash.cl/web/internal/format"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/token"
	"qualitywash.cl/web/internal/users"
)

// ProfileView is the account screen: session identity plus, when the user
// service knows more, the stored registration record.
type ProfileView struct {
	Name      string
	Email     string
	RoleLabel string
	Record    *users.User
	Since     string
}

// ProfilePage renders the account screen.
func ProfilePage(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)

	roleKey, roleDef := "profile.role.client", "Cliente"
	if token.RoleOf(sess.Token) == token.RoleAdmin {
		roleKey, roleDef = "profile.role.admin", "Administrador"
	}

	view := ProfileView{
		Name:      sess.Name,
		Email:     sess.Email,
		RoleLabel: i18nOrDefault(lang, roleKey, roleDef),
	}
	if !sess.CreatedAt.IsZero() {
		view.Since = format.Date(sess.CreatedAt, lang)
	}

	if sess.UserID != 0 {
		ctx := backend.WithBearer(r.Context(), sess.Token)
		if u, err := usersClient.ByID(ctx, sess.UserID); err == nil {
			view.Record = &u
		} else if backend.StatusOf(err) != http.StatusNotFound {
			log.Printf("profile: user %d: %v", sess.UserID, err)
		}
	}

	vm := basePageData(r, i18nOrDefault(lang, "profile.title", "Mi perfil"))
	vm.Profile = view
	renderPage(w, r, "profile", vm)
}
