// Package tools implements the five operations the conversational
// orchestrator invokes on behalf of a shopper. Every operation returns
// short plain text meant to be read aloud, never a raw error message.
package tools

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/cart"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/catalog"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/ledger"
)

// maxBrowseResults caps catalog listings for voice clarity.
const maxBrowseResults = 5

// ErrLedgerWrite signals that an order could not be durably recorded. The
// caller must not report the order as confirmed.
var ErrLedgerWrite = errors.New("order could not be recorded")

// Tools bundles the catalog resolver, cart service, and order ledger behind
// the tool-call boundary.
type Tools struct {
	resolver *catalog.Resolver
	carts    *cart.Service
	orders   ledger.Ledger
}

// New wires the tool operations to their collaborators.
func New(resolver *catalog.Resolver, carts *cart.Service, orders ledger.Ledger) *Tools {
	return &Tools{resolver: resolver, carts: carts, orders: orders}
}

// ShowCatalog browses the store, optionally filtered by a search term and a
// category. At most five products are read out.
func (t *Tools) ShowCatalog(query, category string) (string, error) {
	products := t.resolver.Search(query, category)
	if len(products) == 0 {
		return "I couldn't find any items matching that description.", nil
	}

	lines := []string{fmt.Sprintf("Found %d items in The Agentic Store:", len(products))}
	for i, p := range products {
		if i == maxBrowseResults {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%d %s)", p.Name, p.Price, p.Currency))
	}
	return strings.Join(lines, "\n") + "\n\nWhich one would you like to add to your cart?", nil
}

// AddToCart resolves a free-text product reference and appends it to the
// session's cart. Unresolvable or ambiguous references and invalid
// quantity/size turn into clarification requests, not failures.
func (t *Tools) AddToCart(c *domain.Cart, productRef string, quantity int, size string) (string, error) {
	product, err := t.resolver.ResolveOne(productRef)
	if err != nil {
		var ambiguous *catalog.AmbiguousRefError
		if errors.As(err, &ambiguous) {
			names := make([]string, len(ambiguous.Candidates))
			for i, p := range ambiguous.Candidates {
				names[i] = p.Name
			}
			return fmt.Sprintf("I found a few items that could match '%s': %s. Which one did you mean?",
				productRef, strings.Join(names, ", ")), nil
		}
		return fmt.Sprintf("I'm not sure which product you meant by '%s'. Could you be more specific?", productRef), nil
	}

	if err := t.carts.Add(c, product, quantity, size); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			return "I can only add a positive number of items. How many would you like?", nil
		case errors.Is(err, cart.ErrInvalidSize):
			if len(product.Sizes) == 0 {
				return fmt.Sprintf("The %s doesn't come in sizes, so I'll just need a quantity.", product.Name), nil
			}
			return fmt.Sprintf("The %s comes in %s. Which size would you like?",
				product.Name, strings.Join(product.Sizes, ", ")), nil
		default:
			return "", err
		}
	}

	return fmt.Sprintf("Added %d x %s to your cart. Cart Total: %d %s.",
		quantity, product.Name, t.carts.Total(c), domain.DefaultCurrency), nil
}

// ViewCart reads back the session's cart contents and running total.
func (t *Tools) ViewCart(c *domain.Cart) (string, error) {
	if c.IsEmpty() {
		return "Your cart is currently empty.", nil
	}

	lines := []string{"Your Cart:"}
	for _, item := range c.Lines {
		if item.Size != "" {
			lines = append(lines, fmt.Sprintf("- %d x %s Size: %s", item.Quantity, item.Name, item.Size))
		} else {
			lines = append(lines, fmt.Sprintf("- %d x %s", item.Quantity, item.Name))
		}
	}
	lines = append(lines, fmt.Sprintf("Total: %d %s", t.carts.Total(c), domain.DefaultCurrency))
	return strings.Join(lines, "\n"), nil
}

// PlaceOrder finalizes the session's cart: it snapshots the items and total,
// appends the order to the ledger, and clears the cart. An empty cart is
// rejected without persisting anything. A ledger write failure is returned
// as an error wrapping ErrLedgerWrite; the order was NOT placed.
func (t *Tools) PlaceOrder(c *domain.Cart) (string, error) {
	if c.IsEmpty() {
		return "You cannot place an empty order.", nil
	}

	order := domain.Order{
		OrderID:     newOrderID(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Items:       append([]domain.CartLine(nil), c.Lines...),
		TotalAmount: t.carts.Total(c),
		Currency:    domain.DefaultCurrency,
		Status:      domain.OrderStatusConfirmed,
	}

	if err := t.orders.Append(order); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	t.carts.Clear(c)

	return fmt.Sprintf("Order placed successfully! Your Order ID is %s. Total amount: %d %s. Is there anything else I can help you with?",
		order.OrderID, order.TotalAmount, order.Currency), nil
}

// GetLastOrder summarizes the most recently placed order across all sessions.
func (t *Tools) GetLastOrder() (string, error) {
	last, err := t.orders.Last()
	if err != nil {
		if errors.Is(err, ledger.ErrNoOrders) {
			return "You haven't placed any orders yet.", nil
		}
		return "", err
	}
	return fmt.Sprintf("Your last order (%s) contained %d items for a total of %d %s.",
		last.OrderID, len(last.Items), last.TotalAmount, last.Currency), nil
}

// newOrderID mints an order ID like ORD-3F2A1C from a fresh UUID.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:6])
}
