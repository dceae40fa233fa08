package catalog

import "github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"

// DefaultCatalog returns the seed product set of The Agentic Store.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "hoodie-dev-blk",
			Name:        "Developer Hoodie (Black)",
			Description: "Premium cotton hoodie with 'Ship It' printed on the back.",
			Price:       1499,
			Currency:    domain.DefaultCurrency,
			Category:    "apparel",
			Color:       "black",
			Sizes:       []string{"M", "L", "XL"},
		},
		{
			ID:          "tee-acp-wht",
			Name:        "ACP Protocol Tee",
			Description: "White t-shirt featuring the Agentic Commerce logo.",
			Price:       799,
			Currency:    domain.DefaultCurrency,
			Category:    "apparel",
			Color:       "white",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "mug-neural",
			Name:        "Neural Network Mug",
			Description: "Ceramic mug that reveals code when hot liquid is poured.",
			Price:       499,
			Currency:    domain.DefaultCurrency,
			Category:    "accessories",
			Color:       "black",
		},
		{
			ID:          "cap-tech",
			Name:        "Tech Stack Cap",
			Description: "Minimalist cap for developers.",
			Price:       599,
			Currency:    domain.DefaultCurrency,
			Category:    "accessories",
			Color:       "navy",
			Sizes:       []string{"One Size"},
		},
		{
			ID:          "sticker-pack",
			Name:        "Laptop Sticker Pack",
			Description: "Pack of 10 dev-themed stickers.",
			Price:       199,
			Currency:    domain.DefaultCurrency,
			Category:    "accessories",
			Color:       "multi",
		},
	}
}
