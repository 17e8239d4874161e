package store

import (
	"context"

	"github.com/example/shopfront/internal/domain/catalog"
)

// DefaultProducts is the built-in catalog used when no remote source is
// configured.
var DefaultProducts = []catalog.Product{
	{
		ID:       "1",
		Name:     "Zabiják Chřipky",
		Price:    399,
		ImageURL: "https://pilulkacz.vshcdn.net/zoh4eiLi/IMG/86400/vEQGAhul5Y-XxdfIu9Je0ANJ6_8-GPmeSdpEIaybuGM/trim:0:ffffff,ff00ff/aHR0cHM6Ly9waWx1bGthLnMzLWNlbnRyYWwudnNob3N0aW5nLmNsb3VkL3BpbHVsa2EtY3ovZmlsZXMvaW1hZ2VzLzIwMjMtMDkvbWRfOTk2MDFhZDUxMGM3ZGQyOGM0ZjdlMjcwNDk2MmM1YjkucG5n.png",
	},
	{
		ID:       "2",
		Name:     "Stop Rýmě",
		Price:    599,
		ImageURL: "https://pilulkacz.vshcdn.net/zoh4eiLi/IMG/86400/I87yOWxpov9fq_pcas6-57y_J4Ch5tmhsGySuSAvD_I/trim:0:ffffff,ff00ff/aHR0cHM6Ly9waWx1bGthLnMzLWNlbnRyYWwudnNob3N0aW5nLmNsb3VkL3BpbHVsa2EtY3ovZmlsZXMvaW1hZ2VzLzIwMjQtMTEvbWRfYjUxMzRlYWZjMTM2YThmZjVhZTYwOWMzZGFhNzFmOGIucG5n.png",
	},
	{
		ID:       "3",
		Name:     "Posilovač Imunity",
		Price:    199,
		ImageURL: "https://pilulkacz.vshcdn.net/zoh4eiLi/IMG/86400/-kFcYaEVCy5XODMj6gKnOMFhGcBD-yXNNZzHrDRYJGA/trim:0:ffffff,ff00ff/aHR0cHM6Ly9waWx1bGthLnMzLWNlbnRyYWwudnNob3N0aW5nLmNsb3VkL3Ztcy1wcm9kLWNzL3Ztcy9wcm9kdWN0L2xpc3RpbmcvMjAyMy8xMS95dXp1MjAwMDcyX2RwaTE1MDBweF93ZWJfNjU1YjdhMjAxYmViODEuNzQ3MzQ5MTQucG5n.png",
	},
}

// StaticCatalog serves a fixed product list.
type StaticCatalog struct {
	products []catalog.Product
}

func NewStaticCatalog(products []catalog.Product) *StaticCatalog {
	return &StaticCatalog{products: products}
}

func (c *StaticCatalog) Products(ctx context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
