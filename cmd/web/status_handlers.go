package main

import (
	"net/http"

	mw "qualitywash.cl/web/internal/middleware"
)

// StatusPage shows the probed state of the backend services.
func StatusPage(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	summary := statusClient.Summary(r.Context())

	vm := basePageData(r, i18nOrDefault(lang, "status.title", "Estado de los servicios"))
	vm.Status = summary
	renderPage(w, r, "status", vm)
}
