package cart

import "sync"

// Store keeps one cart per session id, in process memory only. Carts are not
// persisted anywhere: a restart or logout loses them, by design.
//
// All operations on a cart go through the store mutex, so two rapid
// add-to-cart posts from the same session append in arrival order.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

func (s *Store) cart(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Add appends a line to the session's cart.
func (s *Store) Add(sessionID string, l Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Add(l)
}

// Remove drops the line at index from the session's cart; out of range is a
// no-op.
func (s *Store) Remove(sessionID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Remove(index)
}

// View returns the current lines, total and count for rendering.
func (s *Store) View(sessionID string) ([]Line, float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	return c.Lines(), c.Total(), c.Len()
}

// Count is the cart badge value.
func (s *Store) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Len()
}

// Checkout performs the local checkout on the session's cart.
func (s *Store) Checkout(sessionID string) CheckoutResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Checkout()
}

// Clear discards the session's cart entirely, e.g. on logout.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
