package main

import (
	"net/http"
	"strings"
	"sync"

	"qualitywash.cl/web/internal/backend"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/token"
	"qualitywash.cl/web/internal/users"
)

// inFlightAuth serializes credential submissions per session: a second login
// or registration post while the first is still talking to the user service
// is rejected instead of queued.
var inFlightAuth sync.Map

func tryAcquireAuth(sessionID string) (release func(), ok bool) {
	if _, loaded := inFlightAuth.LoadOrStore(sessionID, struct{}{}); loaded {
		return nil, false
	}
	return func() { inFlightAuth.Delete(sessionID) }, true
}

// LoginPage renders the login card. A logged-in session is sent home.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	if mw.GetSession(r).LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderLogin(w, r, LoginView{})
}

func renderLogin(w http.ResponseWriter, r *http.Request, view LoginView) {
	lang := mw.Lang(r)
	vm := basePageData(r, i18nOrDefault(lang, "auth.login.title", "Iniciar sesión"))
	vm.Auth = view
	renderPage(w, r, "login", vm)
}

// LoginSubmit validates credentials locally, then exchanges them with the
// user service and establishes the session.
func LoginSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)
	if sess.LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	view := LoginView{Email: email}
	if errs := validateLogin(lang, email, password); len(errs) > 0 {
		view.Errors = errs
		renderLogin(w, r, view)
		return
	}

	release, ok := tryAcquireAuth(sess.ID)
	if !ok {
		http.Error(w, i18nOrDefault(lang, "auth.err.in_flight", "Hay una solicitud en curso."), http.StatusTooManyRequests)
		return
	}
	defer release()

	acc, err := usersClient.Login(r.Context(), users.Credentials{Email: email, Password: password})
	if err != nil {
		view.BannerTone = "error"
		switch backend.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			view.Banner = i18nOrDefault(lang, "auth.err.credentials", "Correo o contraseña incorrectos.")
		default:
			view.Banner = i18nOrDefault(lang, "auth.err.service", "No pudimos iniciar sesión. Intenta nuevamente.")
		}
		renderLogin(w, r, view)
		return
	}

	id := acc.ID
	if id == 0 {
		if tid, ok := token.UserID(acc.Token); ok {
			id = tid
		}
	}
	sess.SignIn(id, displayName(r, acc), acc.Email, acc.Token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// displayName resolves what the top bar greets the user with: the account's
// full name, then the user record looked up by email, then the email itself.
func displayName(r *http.Request, acc users.Account) string {
	if name := strings.TrimSpace(acc.FullName); name != "" {
		return name
	}
	ctx := backend.WithBearer(r.Context(), acc.Token)
	if u, err := usersClient.ByEmail(ctx, acc.Email); err == nil {
		if name := u.FullName(); name != "" {
			return name
		}
	}
	return acc.Email
}

// RegisterPage renders the registration card.
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	if mw.GetSession(r).LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderRegister(w, r, RegisterView{})
}

func renderRegister(w http.ResponseWriter, r *http.Request, view RegisterView) {
	lang := mw.Lang(r)
	vm := basePageData(r, i18nOrDefault(lang, "auth.register.title", "Crear cuenta"))
	vm.Auth = view
	renderPage(w, r, "register", vm)
}

// RegisterSubmit validates the form, creates the account and signs the new
// user in directly.
func RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)
	if sess.LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	view := RegisterView{Name: name, Email: email}
	if errs := validateRegister(lang, name, email, password, confirm); len(errs) > 0 {
		view.Errors = errs
		renderRegister(w, r, view)
		return
	}

	release, ok := tryAcquireAuth(sess.ID)
	if !ok {
		http.Error(w, i18nOrDefault(lang, "auth.err.in_flight", "Hay una solicitud en curso."), http.StatusTooManyRequests)
		return
	}
	defer release()

	first, last := splitFullName(name)
	_, err := usersClient.Register(r.Context(), users.User{
		Kind:      "CLIENTE",
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		view.BannerTone = "error"
		switch backend.StatusOf(err) {
		case http.StatusConflict:
			view.Banner = i18nOrDefault(lang, "auth.err.taken", "Ya existe una cuenta con ese correo.")
		case http.StatusBadRequest:
			view.Banner = i18nOrDefault(lang, "auth.err.rejected", "El servicio rechazó los datos ingresados.")
		default:
			view.Banner = i18nOrDefault(lang, "auth.err.service_register", "No pudimos crear la cuenta. Intenta nuevamente.")
		}
		renderRegister(w, r, view)
		return
	}

	acc, err := usersClient.Login(r.Context(), users.Credentials{Email: email, Password: password})
	if err != nil {
		// account exists but the follow-up login failed; land on the login card
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	id := acc.ID
	if id == 0 {
		if tid, ok := token.UserID(acc.Token); ok {
			id = tid
		}
	}
	sess.SignIn(id, displayName(r, acc), acc.Email, acc.Token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// LogoutHandler discards the cart, resets the session and lands on the login
// view. The cart is cleared before the session id rotates so nothing leaks to
// the next login on this browser.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	cartStore.Clear(sess.ID)
	sess.Reset()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
