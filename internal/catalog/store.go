package catalog

import (
	"errors"
	"fmt"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// ErrDuplicateID is returned when the seed catalog contains two products
// with the same ID.
var ErrDuplicateID = errors.New("duplicate product id in catalog")

// Store is the process-wide product catalog. It is built once at startup
// and never mutated, so reads need no locking.
type Store struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// NewStore builds a catalog from the given products, preserving their order.
// Product IDs must be unique.
func NewStore(products []domain.Product) (*Store, error) {
	s := &Store{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]domain.Product, len(products)),
	}
	copy(s.products, products)
	for _, p := range products {
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		s.byID[p.ID] = p
	}
	return s, nil
}

// ListAll returns every product in catalog order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func (s *Store) ListAll() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByID looks up a product by its exact ID.
func (s *Store) FindByID(id string) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
