package main

import (
	"flag"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"qualitywash.cl/web/internal/cart"
	"qualitywash.cl/web/internal/cms"
	"qualitywash.cl/web/internal/config"
	"qualitywash.cl/web/internal/contact"
	"qualitywash.cl/web/internal/guard"
	"qualitywash.cl/web/internal/i18n"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/products"
	"qualitywash.cl/web/internal/sales"
	"qualitywash.cl/web/internal/status"
	"qualitywash.cl/web/internal/users"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	devMode      bool

	i18nBundle *i18n.Bundle
	contentLib *cms.Library

	usersClient    *users.Client
	productsClient *products.Client
	contactClient  *contact.Client
	salesClient    *sales.Client
	statusClient   *status.Client
	cartStore      *cart.Store

	rateLimitOn bool
)

func main() {
	cfg := config.Load()

	var (
		addr     string
		tmplPath string
		pubPath  string
	)
	flag.StringVar(&addr, "addr", ":"+cfg.Port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	devMode = cfg.Dev
	rateLimitOn = cfg.IsProduction()

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	var err error
	i18nBundle, err = i18n.Load(cfg.LocalesDir, "es", []string{"es", "en"})
	if err != nil {
		log.Fatalf("load locales: %v", err)
	}
	contentLib = cms.NewLibrary(cfg.ContentDir, "es")

	usersClient = users.NewClient(cfg.UsersURL)
	productsClient = products.NewClient(cfg.ProductsURL)
	contactClient = contact.NewClient(cfg.ContactURL)
	salesClient = sales.NewClient(cfg.SalesURL)
	statusClient = status.NewClient([]status.Service{
		{Name: "Usuarios", BaseURL: cfg.UsersURL},
		{Name: "Productos", BaseURL: cfg.ProductsURL},
		{Name: "Ventas", BaseURL: cfg.SalesURL},
		{Name: "Contacto", BaseURL: cfg.ContactURL},
	})
	cartStore = cart.NewStore()

	mw.ConfigureSessions(cfg.SessionSigningKey, cfg.IsProduction())

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("qualitywash web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

// newRouter wires middleware and every route. Tests build the same router.
func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only run behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, guard.Landing(mw.GetSession(req).LoggedIn), http.StatusSeeOther)
	})

	authLimit := mw.RateLimit(time.Second, 5, rateLimitOn)

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewAuth))
		r.Get("/login", LoginPage)
		r.With(authLimit).Post("/login", LoginSubmit)
		r.Get("/register", RegisterPage)
		r.With(authLimit).Post("/register", RegisterSubmit)
	})
	r.Post("/logout", LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewDashboard))
		r.Get("/dashboard", DashboardPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewStore))
		r.Get("/store", StorePage)
		r.Get("/store/cart/panel", CartPanelFrag)
		r.Post("/store/cart/add", CartAddHandler)
		r.Post("/store/cart/remove", CartRemoveHandler)
		r.Post("/store/cart/checkout", CartCheckoutHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewProfile))
		r.Get("/profile", ProfilePage)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewContact))
		r.Get("/contact", ContactPage)
		r.With(mw.RateLimit(2*time.Second, 3, rateLimitOn)).Post("/contact", ContactSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Guard(guard.ViewAdminProducts))
		r.Get("/admin/products", AdminProductsPage)
		r.Post("/admin/products", AdminProductCreate)
		r.Post("/admin/products/seed", AdminProductSeed)
		r.Post("/admin/products/{id}/update", AdminProductUpdate)
		r.Post("/admin/products/{id}/delete", AdminProductDelete)
	})

	r.Get("/status", StatusPage)

	// Unknown paths resolve to the landing view for the session.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, guard.Landing(mw.GetSession(req).LoggedIn), http.StatusSeeOther)
	})

	return r
}
