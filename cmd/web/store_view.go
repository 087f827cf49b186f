package main

import (
	"context"
	"sort"

	"qualitywash.cl/web/internal/cart"
	"qualitywash.cl/web/internal/format"
	"qualitywash.cl/web/internal/products"
)

// CatalogItem is one product card in the store grid.
type CatalogItem struct {
	ID          int
	Name        string
	Kind        string
	ImageURL    string
	Description string
	// PriceLabel is the grouped unit price shown on the card, e.g. "10.000".
	PriceLabel string
}

// CartLineView is one row of the cart panel.
type CartLineView struct {
	Index      int
	Name       string
	ImageURL   string
	PriceLabel string
}

// CartPanelView is the side panel: lines, grouped total and badge count.
type CartPanelView struct {
	Lang       string
	CSRFToken  string
	Lines      []CartLineView
	Count      int
	TotalLabel string
	Empty      bool
}

// StoreView aggregates the store page data.
type StoreView struct {
	Items      []CatalogItem
	LoadError  string
	Cart       CartPanelView
	Banner     string
	BannerTone string
}

func catalogItem(p products.Product) CatalogItem {
	return CatalogItem{
		ID:          p.ID,
		Name:        p.Name,
		Kind:        p.Kind,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		PriceLabel:  format.Miles(p.Price),
	}
}

func loadCatalog(ctx context.Context) ([]CatalogItem, error) {
	list, err := productsClient.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	items := make([]CatalogItem, 0, len(list))
	for _, p := range list {
		items = append(items, catalogItem(p))
	}
	return items, nil
}

// cartLine snapshots a catalog item into the cart at add time.
func cartLine(item CatalogItem) cart.Line {
	return cart.Line{
		ProductID:   item.ID,
		Name:        item.Name,
		ImageURL:    item.ImageURL,
		Description: item.Description,
		PriceLabel:  item.PriceLabel,
	}
}

func buildCartPanel(lang, sessionID, csrfToken string) CartPanelView {
	lines, total, count := cartStore.View(sessionID)
	view := CartPanelView{
		Lang:       lang,
		CSRFToken:  csrfToken,
		Count:      count,
		TotalLabel: format.CLP(total),
		Empty:      count == 0,
	}
	for i, l := range lines {
		view.Lines = append(view.Lines, CartLineView{
			Index:      i,
			Name:       l.Name,
			ImageURL:   l.ImageURL,
			PriceLabel: l.PriceLabel,
		})
	}
	return view
}
