package main

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// LoginView is the view model for the login card.
type LoginView struct {
	Email  string
	Errors map[string]string
	Banner string
	// BannerTone is "error" or "info"
	BannerTone string
}

// RegisterView is the view model for the registration card.
type RegisterView struct {
	Name       string
	Email      string
	Errors     map[string]string
	Banner     string
	BannerTone string
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateLogin checks the login form. A well-formed email and a password of
// at least 4 characters are required before any backend call is made.
func validateLogin(lang, email, password string) map[string]string {
	errs := map[string]string{}
	if !emailRx.MatchString(strings.TrimSpace(email)) {
		errs["email"] = i18nOrDefault(lang, "auth.err.email", "Ingresa un correo válido.")
	}
	if utf8.RuneCountInString(password) < 4 {
		errs["password"] = i18nOrDefault(lang, "auth.err.password_short", "La contraseña debe tener al menos 4 caracteres.")
	}
	return errs
}

// validateRegister checks the registration form: full name 3-50 characters,
// well-formed email, password 6-50 characters, matching confirmation.
func validateRegister(lang, name, email, password, confirm string) map[string]string {
	errs := map[string]string{}
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < 3 || n > 50 {
		errs["name"] = i18nOrDefault(lang, "auth.err.name", "El nombre debe tener entre 3 y 50 caracteres.")
	}
	if !emailRx.MatchString(strings.TrimSpace(email)) {
		errs["email"] = i18nOrDefault(lang, "auth.err.email", "Ingresa un correo válido.")
	}
	p := utf8.RuneCountInString(password)
	if p < 6 || p > 50 {
		errs["password"] = i18nOrDefault(lang, "auth.err.password_len", "La contraseña debe tener entre 6 y 50 caracteres.")
	}
	if password != confirm {
		errs["confirm"] = i18nOrDefault(lang, "auth.err.confirm", "Las contraseñas no coinciden.")
	}
	return errs
}

// splitFullName derives first/last name for the registration record.
func splitFullName(full string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}
