package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// ErrNoMatch is returned when a free-text reference matches no product.
var ErrNoMatch = errors.New("no product matches the reference")

// AmbiguousRefError is returned when keyword matching finds more than one
// plausible product for a reference. Candidates are in catalog order.
type AmbiguousRefError struct {
	Candidates []domain.Product
}

func (e *AmbiguousRefError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, p := range e.Candidates {
		names[i] = p.Name
	}
	return fmt.Sprintf("reference is ambiguous between: %s", strings.Join(names, ", "))
}

// Resolver answers product searches and resolves free-text references
// (typically transcribed speech) to catalog products.
type Resolver struct {
	store *Store
}

// NewResolver returns a resolver backed by the given catalog.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Search filters the catalog. category must match Product.Category exactly;
// query matches case-insensitively against name or description. Both filters
// are optional and combine with AND. Catalog order is preserved and an empty
// result is not an error.
func (r *Resolver) Search(query, category string) []domain.Product {
	q := strings.ToLower(query)
	results := []domain.Product{}
	for _, p := range r.store.ListAll() {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		results = append(results, p)
	}
	return results
}

// ResolveOne maps a free-text reference to a single product using a
// three-tier cascade, each tier scanning the catalog in order:
//
//  1. the reference equals a product ID,
//  2. a product name appears inside the reference,
//  3. a name keyword (longer than 3 characters) appears inside the reference.
//
// Tiers 1 and 2 return the first hit. Tier 3 collects all hits: a single hit
// resolves, multiple hits return *AmbiguousRefError so the caller can ask the
// user which product was meant. No hit at any tier returns ErrNoMatch.
func (r *Resolver) ResolveOne(ref string) (domain.Product, error) {
	lowered := strings.ToLower(ref)
	products := r.store.ListAll()

	for _, p := range products {
		if strings.ToLower(p.ID) == lowered {
			return p, nil
		}
	}

	for _, p := range products {
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			return p, nil
		}
	}

	var candidates []domain.Product
	for _, p := range products {
		for _, keyword := range strings.Fields(strings.ToLower(p.Name)) {
			if len(keyword) > 3 && strings.Contains(lowered, keyword) {
				candidates = append(candidates, p)
				break
			}
		}
	}
	switch len(candidates) {
	case 0:
		return domain.Product{}, ErrNoMatch
	case 1:
		return candidates[0], nil
	default:
		return domain.Product{}, &AmbiguousRefError{Candidates: candidates}
	}
}
