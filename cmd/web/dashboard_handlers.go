package main

import (
	"log"
	"net/http"

	"qualitywash.cl/web/internal/cms"
	mw "qualitywash.cl/web/internal/middleware"
)

var dashboardSlugs = []string{"quienes-somos", "servicios", "horarios"}

// DashboardView carries the marketing sections of the home screen.
type DashboardView struct {
	Greeting string
	Sections []cms.Page
}

// DashboardPage renders the landing screen for authenticated sessions.
func DashboardPage(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)

	var sections []cms.Page
	for _, slug := range dashboardSlugs {
		p, err := contentLib.Page(slug, lang)
		if err != nil {
			log.Printf("dashboard: content %s: %v", slug, err)
			continue
		}
		sections = append(sections, p)
	}

	greeting := i18nOrDefault(lang, "dashboard.greeting", "Hola")
	if sess.Name != "" {
		greeting = greeting + ", " + sess.Name
	}

	vm := basePageData(r, i18nOrDefault(lang, "dashboard.title", "Inicio"))
	vm.SEO.Description = i18nOrDefault(lang, "dashboard.description", "Lavandería Quality Wash: servicios, horarios y tienda de productos.")
	vm.Dashboard = DashboardView{Greeting: greeting, Sections: sections}
	renderPage(w, r, "dashboard", vm)
}
