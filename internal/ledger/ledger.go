package ledger

import (
	"errors"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// ErrNoOrders is returned by Last when the ledger holds no orders.
var ErrNoOrders = errors.New("no orders placed yet")

// Ledger is the durable, append-only record of every placed order.
type Ledger interface {
	// Append durably records one order. The error must be checked: an order
	// that failed to append was never placed.
	Append(order domain.Order) error

	// LoadAll returns every order in placement order. An unreadable store
	// reads as empty rather than failing.
	LoadAll() []domain.Order

	// Last returns the most recently appended order, or ErrNoOrders.
	Last() (domain.Order, error)
}
