package catalog

import "context"

// Product is a single catalog record. Catalog data is read-only once
// fetched; cart state never writes back into it.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // whole currency units
	ImageURL string `json:"image_url,omitempty"`
}

// Source supplies the full product collection in a single fetch.
// No pagination, no filtering.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}
