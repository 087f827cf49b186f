// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the app.
type Config struct {
	Port string
	Env  string
	Dev  bool

	UsersURL    string
	ProductsURL string
	SalesURL    string
	ContactURL  string

	SessionSigningKey string

	TemplatesDir string
	PublicDir    string
	LocalesDir   string
	ContentDir   string
}

// Load reads the environment. Missing backend URLs are allowed: the service
// clients fall back to their local fakes, which keeps the app bootable with
// zero configuration.
func Load() *Config {
	// .env is a dev convenience; absence is not an error
	_ = godotenv.Load()

	port := getenv("QW_WEB_PORT", os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	env := strings.ToLower(getenv("QW_WEB_ENV", "dev"))

	return &Config{
		Port: port,
		Env:  env,
		Dev:  os.Getenv("QW_WEB_DEV") != "" || os.Getenv("DEV") != "" || env != "prod",

		UsersURL:    os.Getenv("QW_USERS_API_URL"),
		ProductsURL: os.Getenv("QW_PRODUCTS_API_URL"),
		SalesURL:    os.Getenv("QW_SALES_API_URL"),
		ContactURL:  os.Getenv("QW_CONTACT_API_URL"),

		SessionSigningKey: os.Getenv("QW_WEB_SESSION_SIGNING_KEY"),

		TemplatesDir: getenv("QW_WEB_TEMPLATES_DIR", "templates"),
		PublicDir:    getenv("QW_WEB_PUBLIC_DIR", "public"),
		LocalesDir:   getenv("QW_WEB_LOCALES_DIR", "locales"),
		ContentDir:   getenv("QW_WEB_CONTENT_DIR", "content"),
	}
}

// IsProduction reports whether hardened settings (secure cookies, rate
// limits) should apply.
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
