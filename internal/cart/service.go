package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/catalog"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// Validation errors returned by Add.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidSize     = errors.New("invalid size for product")
)

// Service mutates carts and prices them against the catalog.
type Service struct {
	store *catalog.Store
}

// NewService returns a cart service backed by the given catalog.
func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Add appends a line for the given product, snapshotting its ID and name.
// Quantity must be positive. A size, when supplied, must be one the product
// declares; products without declared sizes accept no size at all.
func (s *Service) Add(c *domain.Cart, p domain.Product, quantity int, size string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if size != "" {
		if len(p.Sizes) == 0 {
			return fmt.Errorf("%w: %s has no size options", ErrInvalidSize, p.Name)
		}
		if !p.HasSize(size) {
			return fmt.Errorf("%w: %s comes in %s", ErrInvalidSize, p.Name, strings.Join(p.Sizes, ", "))
		}
	}
	c.Lines = append(c.Lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		Size:      size,
	})
	return nil
}

// Total sums price * quantity over the cart, pricing each line against the
// current catalog. Lines whose product is no longer in the catalog contribute
// nothing rather than failing the whole total.
func (s *Service) Total(c *domain.Cart) int {
	total := 0
	for _, line := range c.Lines {
		p, ok := s.store.FindByID(line.ProductID)
		if !ok {
			continue
		}
		total += p.Price * line.Quantity
	}
	return total
}

// Clear empties the cart in place. Called only after an order has been
// durably recorded.
func (s *Service) Clear(c *domain.Cart) {
	c.Lines = nil
}
