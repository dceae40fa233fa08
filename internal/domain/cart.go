package domain

// CartLine is one entry in a cart: a product reference with quantity and
// an optional size. Name is a snapshot of the product name at add time.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// Cart holds the line items of one conversation session. It is owned by
// exactly that session and is never persisted; it lives and dies with the
// conversation.
type Cart struct {
	Lines []CartLine
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
