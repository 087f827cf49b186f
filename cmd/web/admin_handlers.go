package main

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"qualitywash.cl/web/internal/backend"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/products"
)

// AdminProductsPage renders the catalog management table and create form.
func AdminProductsPage(w http.ResponseWriter, r *http.Request) {
	renderAdminProducts(w, r, AdminProductsView{})
}

func renderAdminProducts(w http.ResponseWriter, r *http.Request, view AdminProductsView) {
	lang := mw.Lang(r)
	ctx := backend.WithBearer(r.Context(), mw.GetSession(r).Token)

	list, err := productsClient.List(ctx)
	if err != nil {
		log.Printf("admin: list products: %v", err)
		view.LoadError = remoteErrorLabel(lang, err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	for _, p := range list {
		view.Rows = append(view.Rows, adminRow(p))
	}

	vm := basePageData(r, i18nOrDefault(lang, "admin.title", "Gestión de productos"))
	vm.AdminView = view
	renderPage(w, r, "admin_products", vm)
}

// remoteErrorLabel pairs the generic failure copy with the backend's status
// code so an admin can tell a 401 from a 503 at a glance.
func remoteErrorLabel(lang string, err error) string {
	msg := i18nOrDefault(lang, "admin.err.service", "El servicio de productos no respondió.")
	if code := backend.StatusOf(err); code != 0 {
		return fmt.Sprintf("%s (HTTP %d)", msg, code)
	}
	return msg
}

// AdminProductCreate validates the form and adds a catalog record.
func AdminProductCreate(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := productFormFromPost(r.PostFormValue)
	p, errs := validateProductForm(lang, form)
	if len(errs) > 0 {
		renderAdminProducts(w, r, AdminProductsView{Form: form, Errors: errs})
		return
	}

	ctx := backend.WithBearer(r.Context(), mw.GetSession(r).Token)
	created, err := productsClient.Create(ctx, p)
	if err != nil {
		log.Printf("admin: create product: %v", err)
		renderAdminProducts(w, r, AdminProductsView{
			Form:       form,
			Banner:     remoteErrorLabel(lang, err),
			BannerTone: "error",
		})
		return
	}
	renderAdminProducts(w, r, AdminProductsView{
		Banner:     fmt.Sprintf(i18nOrDefault(lang, "admin.created", "Producto %q creado."), created.Name),
		BannerTone: "success",
	})
}

// AdminProductUpdate replaces the record behind the edited row.
func AdminProductUpdate(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := productFormFromPost(r.PostFormValue)
	p, errs := validateProductForm(lang, form)
	if len(errs) > 0 {
		renderAdminProducts(w, r, AdminProductsView{Form: form, Errors: errs})
		return
	}

	ctx := backend.WithBearer(r.Context(), mw.GetSession(r).Token)
	updated, err := productsClient.Update(ctx, id, p)
	if err != nil {
		log.Printf("admin: update product %d: %v", id, err)
		renderAdminProducts(w, r, AdminProductsView{
			Banner:     remoteErrorLabel(lang, err),
			BannerTone: "error",
		})
		return
	}
	renderAdminProducts(w, r, AdminProductsView{
		Banner:     fmt.Sprintf(i18nOrDefault(lang, "admin.updated", "Producto %q actualizado."), updated.Name),
		BannerTone: "success",
	})
}

// AdminProductSeed loads the sample catalog, skipping records that fail so
// one rejection does not abort the batch.
func AdminProductSeed(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	ctx := backend.WithBearer(r.Context(), mw.GetSession(r).Token)

	created := 0
	var lastErr error
	for _, p := range products.Samples() {
		if _, err := productsClient.Create(ctx, p); err != nil {
			log.Printf("admin: seed %q: %v", p.Name, err)
			lastErr = err
			continue
		}
		created++
	}

	view := AdminProductsView{BannerTone: "success"}
	switch {
	case created == 0 && lastErr != nil:
		view.Banner = remoteErrorLabel(lang, lastErr)
		view.BannerTone = "error"
	default:
		view.Banner = fmt.Sprintf(i18nOrDefault(lang, "admin.seeded", "%d productos de ejemplo cargados."), created)
	}
	renderAdminProducts(w, r, view)
}

// AdminProductDelete removes a catalog record.
func AdminProductDelete(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	ctx := backend.WithBearer(r.Context(), mw.GetSession(r).Token)
	if err := productsClient.Delete(ctx, id); err != nil {
		log.Printf("admin: delete product %d: %v", id, err)
		renderAdminProducts(w, r, AdminProductsView{
			Banner:     remoteErrorLabel(lang, err),
			BannerTone: "error",
		})
		return
	}
	renderAdminProducts(w, r, AdminProductsView{
		Banner:     i18nOrDefault(lang, "admin.deleted", "Producto eliminado."),
		BannerTone: "success",
	})
}
