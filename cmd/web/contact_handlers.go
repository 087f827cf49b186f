package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"qualitywash.cl/web/internal/contact"
	mw "qualitywash.cl/web/internal/middleware"
)

// ContactView is the contact form with its banner and field errors.
type ContactView struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	Errors     map[string]string
	Banner     string
	BannerTone string
}

// ContactPage renders the contact form, prefilled from the session.
func ContactPage(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	renderContact(w, r, ContactView{Name: sess.Name, Email: sess.Email})
}

func renderContact(w http.ResponseWriter, r *http.Request, view ContactView) {
	lang := mw.Lang(r)
	vm := basePageData(r, i18nOrDefault(lang, "contact.title", "Contacto"))
	vm.Contact = view
	renderPage(w, r, "contact", vm)
}

func validateContact(lang, name, email, message string) map[string]string {
	errs := map[string]string{}
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < 3 || n > 50 {
		errs["name"] = i18nOrDefault(lang, "auth.err.name", "El nombre debe tener entre 3 y 50 caracteres.")
	}
	if !emailRx.MatchString(strings.TrimSpace(email)) {
		errs["email"] = i18nOrDefault(lang, "auth.err.email", "Ingresa un correo válido.")
	}
	m := utf8.RuneCountInString(strings.TrimSpace(message))
	if m < 10 || m > 500 {
		errs["message"] = i18nOrDefault(lang, "contact.err.message", "El mensaje debe tener entre 10 y 500 caracteres.")
	}
	return errs
}

// ContactSubmit validates and stores a contact message, echoing its folio.
func ContactSubmit(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := ContactView{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if errs := validateContact(lang, view.Name, view.Email, view.Message); len(errs) > 0 {
		view.Errors = errs
		renderContact(w, r, view)
		return
	}

	receipt, err := contactClient.Submit(r.Context(), contact.Submission{
		Name:    view.Name,
		Email:   view.Email,
		Phone:   view.Phone,
		Message: view.Message,
	})
	if err != nil {
		log.Printf("contact: submit: %v", err)
		view.Banner = i18nOrDefault(lang, "contact.err.service", "No pudimos enviar tu mensaje. Intenta más tarde.")
		view.BannerTone = "error"
		renderContact(w, r, view)
		return
	}

	done := ContactView{
		Banner:     fmt.Sprintf(i18nOrDefault(lang, "contact.done", "Mensaje enviado. Tu número de folio es %d."), receipt.ID),
		BannerTone: "success",
	}
	renderContact(w, r, done)
}
