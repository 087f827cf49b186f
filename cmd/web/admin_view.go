package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"qualitywash.cl/web/internal/format"
	"qualitywash.cl/web/internal/products"
)

// AdminProductRow is one catalog record in the management table.
type AdminProductRow struct {
	ID          int
	Name        string
	Kind        string
	Stock       string
	Description string
	Price       float64
	PriceLabel  string
	ImageURL    string
}

// AdminProductsView is the product management screen.
type AdminProductsView struct {
	Rows       []AdminProductRow
	Form       AdminProductForm
	Errors     map[string]string
	Banner     string
	BannerTone string
	LoadError  string
}

// AdminProductForm echoes the create form fields back on validation failure.
type AdminProductForm struct {
	Name        string
	Kind        string
	Stock       string
	Description string
	Price       string
	ImageURL    string
}

func adminRow(p products.Product) AdminProductRow {
	return AdminProductRow{
		ID:          p.ID,
		Name:        p.Name,
		Kind:        p.Kind,
		Stock:       p.Stock,
		Description: p.Description,
		Price:       p.Price,
		PriceLabel:  format.CLP(p.Price),
		ImageURL:    p.ImageURL,
	}
}

// validateProductForm checks the create/update form and, when valid, returns
// the product to send to the catalog service.
func validateProductForm(lang string, f AdminProductForm) (products.Product, map[string]string) {
	errs := map[string]string{}
	name := strings.TrimSpace(f.Name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 80 {
		errs["name"] = i18nOrDefault(lang, "admin.err.name", "El nombre debe tener entre 3 y 80 caracteres.")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price <= 0 {
		errs["price"] = i18nOrDefault(lang, "admin.err.price", "Ingresa un precio mayor a cero.")
	}
	if len(errs) > 0 {
		return products.Product{}, errs
	}
	return products.Product{
		Name:        name,
		Kind:        strings.ToUpper(strings.TrimSpace(f.Kind)),
		Stock:       strings.TrimSpace(f.Stock),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		ImageURL:    strings.TrimSpace(f.ImageURL),
	}, nil
}

func productFormFromPost(get func(string) string) AdminProductForm {
	return AdminProductForm{
		Name:        get("name"),
		Kind:        get("kind"),
		Stock:       get("stock"),
		Description: get("description"),
		Price:       get("price"),
		ImageURL:    get("image_url"),
	}
}
