package domain

// OrderStatus represents the state of a placed order.
type OrderStatus string

const (
	// OrderStatusConfirmed is the only status this engine writes; fulfilment
	// states belong to downstream systems.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

// Order is a finalized purchase. Once written to the ledger an order is
// immutable and its ID is never reused.
type Order struct {
	OrderID     string      `json:"order_id"`
	Timestamp   string      `json:"timestamp"`
	Items       []CartLine  `json:"items"`
	TotalAmount int         `json:"total_amount"`
	Currency    string      `json:"currency"`
	Status      OrderStatus `json:"status"`
}
