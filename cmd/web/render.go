package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	handlersPkg "qualitywash.cl/web/internal/handlers"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/nav"
	"qualitywash.cl/web/internal/token"
)

var tmplCache *template.Template

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"t": func(lang, key string) string {
			return i18nOrDefault(lang, key, key)
		},
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func currentTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes the full-page template "page_<name>". Each page
// template pulls in the shared head/topnav/footer partials itself.
func renderPage(w http.ResponseWriter, r *http.Request, name string, vm handlersPkg.PageData) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	if t.Lookup("page_"+name) == nil {
		http.Error(w, fmt.Sprintf("unknown page template %q", name), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "page_"+name, vm); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a standalone template (htmx fragments).
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// i18nOrDefault translates key in lang, returning def when the bundle has no
// better answer than the key itself.
func i18nOrDefault(lang, key, def string) string {
	if i18nBundle == nil {
		return def
	}
	if v := i18nBundle.T(lang, key); v != key {
		return v
	}
	return def
}

// basePageData fills the layout-level fields every page shares.
func basePageData(r *http.Request, title string) handlersPkg.PageData {
	sess := mw.GetSession(r)
	admin := sess.LoggedIn && token.RoleOf(sess.Token) == token.RoleAdmin
	vm := handlersPkg.PageData{
		Title:     title,
		Lang:      mw.Lang(r),
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path, admin),
		Analytics: handlersPkg.LoadAnalyticsFromEnv(),
		LoggedIn:  sess.LoggedIn,
		Admin:     admin,
		UserName:  sess.Name,
		UserEmail: sess.Email,
		CartCount: cartStore.Count(sess.ID),
		CSRFToken: sess.CSRFToken,
	}
	brand := i18nOrDefault(vm.Lang, "brand.name", "Quality Wash")
	vm.SEO.Title = title + " | " + brand
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary"
	return vm
}

func absoluteURL(r *http.Request) string {
	base := siteBaseURL()
	if base == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return strings.TrimRight(base, "/") + r.URL.Path
}

func siteBaseURL() string {
	return strings.TrimSpace(os.Getenv("QW_WEB_BASE_URL"))
}
