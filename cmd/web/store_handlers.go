package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"qualitywash.cl/web/internal/backend"
	"qualitywash.cl/web/internal/cart"
	"qualitywash.cl/web/internal/format"
	mw "qualitywash.cl/web/internal/middleware"
	"qualitywash.cl/web/internal/sales"
)

// StorePage renders the catalog grid with the cart panel.
func StorePage(w http.ResponseWriter, r *http.Request) {
	renderStore(w, r, "", "")
}

func renderStore(w http.ResponseWriter, r *http.Request, banner, tone string) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)

	view := StoreView{Banner: banner, BannerTone: tone}
	items, err := loadCatalog(r.Context())
	if err != nil {
		log.Printf("store: load catalog: %v", err)
		view.LoadError = i18nOrDefault(lang, "store.err.catalog", "No pudimos cargar el catálogo. Intenta más tarde.")
	}
	view.Items = items
	view.Cart = buildCartPanel(lang, sess.ID, sess.CSRFToken)

	vm := basePageData(r, i18nOrDefault(lang, "store.title", "Tienda"))
	vm.SEO.Description = i18nOrDefault(lang, "store.description", "Productos de lavandería Quality Wash.")
	vm.CartCount = view.Cart.Count
	vm.Store = view
	renderPage(w, r, "store", vm)
}

// CartPanelFrag renders the cart side panel fragment.
func CartPanelFrag(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	renderTemplate(w, r, "frag_cart_panel", buildCartPanel(mw.Lang(r), sess.ID, sess.CSRFToken))
}

// CartAddHandler adds one unit of the posted product to the cart. The product
// is re-fetched so the cart line snapshots current catalog data, not whatever
// the page was rendered with.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(r.PostFormValue("product_id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}
	p, err := productsClient.ByID(r.Context(), id)
	if err != nil {
		status := backend.StatusOf(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		http.Error(w, i18nOrDefault(mw.Lang(r), "store.err.add", "No pudimos agregar el producto."), status)
		return
	}
	cartStore.Add(sess.ID, cartLine(catalogItem(p)))
	respondCart(w, r)
}

// CartRemoveHandler removes the line at the posted index. An index that no
// longer exists (double click on quitar) is a silent no-op.
func CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(r.PostFormValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	cartStore.Remove(sess.ID, index)
	respondCart(w, r)
}

// respondCart answers a cart mutation: the refreshed panel fragment for htmx,
// a redirect back to the store otherwise.
func respondCart(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	if mw.IsHTMX(r.Context()) {
		count := cartStore.Count(sess.ID)
		if raw, err := json.Marshal(map[string]any{"cart:updated": map[string]int{"count": count}}); err == nil {
			w.Header().Set("HX-Trigger", string(raw))
		}
		renderTemplate(w, r, "frag_cart_panel", buildCartPanel(mw.Lang(r), sess.ID, sess.CSRFToken))
		return
	}
	http.Redirect(w, r, "/store", http.StatusSeeOther)
}

// CartCheckoutHandler completes the purchase locally: the cart is snapshotted
// and emptied in one step, the confirmation shows the covered total, and a
// boleta is recorded with the sales service in the background when one is
// configured. A sales failure never surfaces to the customer.
func CartCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sess := mw.GetSession(r)

	res := cartStore.Checkout(sess.ID)
	if salesClient.Enabled() && res.Items > 0 {
		go recordReceipt(sess.UserID, sess.Email, sess.Token, res)
	}

	var banner string
	if res.Items == 0 {
		banner = i18nOrDefault(lang, "store.checkout.empty", "Tu carrito estaba vacío.")
	} else {
		banner = fmt.Sprintf(i18nOrDefault(lang, "store.checkout.done", "Compra realizada por %s (%d productos). ¡Gracias!"),
			format.CLP(res.Total), res.Items)
	}
	if mw.IsHTMX(r.Context()) {
		data := buildCartPanel(lang, sess.ID, sess.CSRFToken)
		if raw, err := json.Marshal(map[string]any{
			"cart:updated":  map[string]int{"count": 0},
			"cart:checkout": map[string]string{"message": banner},
		}); err == nil {
			w.Header().Set("HX-Trigger", string(raw))
		}
		renderTemplate(w, r, "frag_cart_panel", data)
		return
	}
	renderStore(w, r, banner, "success")
}

// recordReceipt posts the boleta best-effort, detached from the request.
func recordReceipt(userID int, email, token string, res cart.CheckoutResult) {
	ctx, cancel := context.WithTimeout(context.Background(), backend.DefaultTimeout)
	defer cancel()
	ctx = backend.WithBearer(ctx, token)

	receipt := sales.Receipt{
		ClientID:    userID,
		ClientEmail: email,
		Total:       res.Total,
	}
	for _, l := range res.Lines {
		receipt.Items = append(receipt.Items, sales.LineItem{
			ProductID: l.ProductID,
			Quantity:  1,
			UnitPrice: cart.ParsePrice(l.PriceLabel),
		})
	}
	if _, err := salesClient.CreateReceipt(ctx, receipt); err != nil {
		log.Printf("sales: record boleta: %v", err)
	}
}
