// Package session holds the authoritative in-memory state for the active
// storefront session: the logged-in user and the current cart. Writes always
// replace the whole value, never patch it, so the store can never reflect a
// half-applied server change. Readers must treat it as the sole truth.
package session

import (
	"sync"

	"github.com/angelmondragon/storefront/internal/catalog"
)

// Store owns the current-session user and cart.
type Store struct {
	mu   sync.RWMutex
	user *catalog.User
	cart []catalog.CartItem
}

func NewStore() *Store {
	return &Store{}
}

// SetUser replaces the session user. A copy is stored so callers cannot
// mutate it afterwards.
func (s *Store) SetUser(user *catalog.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	copied := *user
	s.user = &copied
}

// User returns the session user, or nil before a successful login.
func (s *Store) User() *catalog.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// ReplaceCart swaps in a freshly fetched cart wholesale. Concurrent replacers
// race last-writer-wins; there is deliberately no merging.
func (s *Store) ReplaceCart(items []catalog.CartItem) {
	copied := make([]catalog.CartItem, len(items))
	copy(copied, items)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = copied
}

// Cart returns a snapshot of the current cart.
func (s *Store) Cart() []catalog.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]catalog.CartItem, len(s.cart))
	copy(snapshot, s.cart)
	return snapshot
}

// CartCount reports the number of cart lines, for the badge.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cart)
}
