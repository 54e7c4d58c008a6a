package cart

import (
	"context"
	"sync"

	"storefront/models"
)

// Catalog caches the newest product snapshot fetched from the server.
// Every refresh is tagged with a sequence number taken before the request
// goes out, so a slow response that arrives after a newer one completed is
// discarded instead of clobbering fresher data.
type Catalog struct {
	client *Client

	mu       sync.Mutex
	seq      uint64 // last issued refresh
	applied  uint64 // refresh that produced the current snapshot
	products []models.Product
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Refresh fetches the product list and applies it if no newer refresh has
// landed in the meantime. It returns the current snapshot either way.
func (c *Catalog) Refresh(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	products, err := c.client.Products(ctx)
	if err != nil {
		return c.Products(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq > c.applied {
		c.applied = seq
		c.products = products
	}
	return append([]models.Product(nil), c.products...), nil
}

// Products returns the current snapshot without fetching.
func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Product(nil), c.products...)
}
