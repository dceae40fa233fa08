package session

import (
	"sync"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// Manager owns the carts of all active conversation sessions. Each session
// gets exactly one cart, created on first use and discarded when the
// conversation ends. Carts are never shared across sessions.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*domain.Cart)}
}

// Cart returns the cart owned by the given session, creating it if the
// session is new.
func (m *Manager) Cart(sessionID string) *domain.Cart {
	m.mu.RLock()
	c, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Re-check: another goroutine may have created it between the locks.
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c = &domain.Cart{}
	m.carts[sessionID] = c
	return c
}

// End discards the session's cart. Ending an unknown session is a no-op.
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

// Active returns the number of sessions currently holding a cart.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.carts)
}
