package domain

// DefaultCurrency is the only currency the store trades in.
const DefaultCurrency = "INR"

// Product is a single catalog entry. Products are immutable once the
// catalog is built.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Sizes       []string `json:"sizes,omitempty"`
}

// HasSize reports whether size is one of the product's declared sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
