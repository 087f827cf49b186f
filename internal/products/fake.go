package products

import (
	"sort"
	"sync"

	"qualitywash.cl/web/internal/backend"
)

// fakeCatalog is a mutex-guarded in-memory catalog so the admin screen works
// end to end without a product service.
type fakeCatalog struct {
	mu     sync.Mutex
	nextID int
	items  map[int]Product
}

func newFakeCatalog() *fakeCatalog {
	f := &fakeCatalog{nextID: 1, items: map[int]Product{}}
	for _, p := range Samples() {
		p.ID = f.nextID
		f.items[p.ID] = p
		f.nextID++
	}
	return f
}

// Samples is the standard laundry line-up: it seeds the in-memory catalog
// and backs the admin "load sample products" action.
func Samples() []Product {
	return []Product{
		{
			Name:        "Detergente Ariel",
			Kind:        "LAVADO",
			Stock:       "120",
			Description: "Fórmula concentrada para ropa blanca y de color, con un aroma fresco y duradero.",
			Price:       10000,
			ImageURL:    "/assets/img/detergente.jpg",
		},
		{
			Name:        "Suavizante Concentrado",
			Kind:        "LAVADO",
			Stock:       "90",
			Description: "Deja tus prendas increíblemente suaves, reduciendo arrugas y facilitando el planchado.",
			Price:       8990,
			ImageURL:    "/assets/img/suavizante.jpg",
		},
		{
			Name:        "Blanqueador sin Cloro",
			Kind:        "LAVADO",
			Stock:       "60",
			Description: "Elimina manchas difíciles sin dañar los tejidos, ideal para ropa delicada.",
			Price:       7500,
			ImageURL:    "/assets/img/blanqueador.jpg",
		},
		{
			Name:        "Quitamanchas",
			Kind:        "TRATAMIENTO",
			Stock:       "75",
			Description: "Actúa directamente sobre las manchas, dejándolas listas para el lavado.",
			Price:       10000,
			ImageURL:    "/assets/img/quitamanchas.jpg",
		},
		{
			Name:        "Limpiador Multiusos",
			Kind:        "HOGAR",
			Stock:       "100",
			Description: "Perfecto para todas las superficies, con un aroma a cítricos que refresca tu hogar.",
			Price:       6500,
			ImageURL:    "/assets/img/multiusos.jpg",
		},
		{
			Name:        "Toallitas Secadoras",
			Kind:        "SECADO",
			Stock:       "80",
			Description: "Ayudan a reducir la estática y a mantener la frescura de tu ropa en cada ciclo de secado.",
			Price:       4990,
			ImageURL:    "/assets/img/toallitas.jpg",
		},
	}
}

func (f *fakeCatalog) list() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCatalog) byID(id int) (Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return Product{}, &backend.StatusError{Status: 404, Message: "Producto no encontrado"}
	}
	return p, nil
}

func (f *fakeCatalog) create(p Product) Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.nextID
	f.nextID++
	f.items[p.ID] = p
	return p
}

func (f *fakeCatalog) update(id int, p Product) (Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return Product{}, &backend.StatusError{Status: 404, Message: "Producto no encontrado"}
	}
	p.ID = id
	f.items[id] = p
	return p, nil
}

func (f *fakeCatalog) remove(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return &backend.StatusError{Status: 404, Message: "Producto no encontrado"}
	}
	delete(f.items, id)
	return nil
}
