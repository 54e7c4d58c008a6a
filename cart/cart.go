// Package cart is the client side of the storefront: the shopper's pending
// order, persisted locally and reconciled against product snapshots fetched
// from the catalog API.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"storefront/models"
)

// cartKey is the local-store entry holding the serialized cart collection.
const cartKey = "cart"

// Item is one pending order line. At most one Item exists per product.
type Item struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// Manager owns the cart state. Every mutation replaces state under the
// lock and then persists the whole collection to the local store;
// persistence is best-effort and never fails a mutation.
type Manager struct {
	mu    sync.Mutex
	items []Item
	store Store
}

// NewManager loads the persisted cart. Corrupt stored data is discarded:
// the manager starts empty and the entry is cleared.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	raw, ok, err := store.Get(cartKey)
	if err != nil {
		log.Printf("cart: failed to load persisted cart: %v", err)
		return m
	}
	if !ok {
		return m
	}
	if err := json.Unmarshal(raw, &m.items); err != nil {
		log.Printf("cart: discarding corrupt persisted cart: %v", err)
		m.items = nil
		if err := store.Delete(cartKey); err != nil {
			log.Printf("cart: failed to clear corrupt cart entry: %v", err)
		}
	}
	return m
}

// Add puts qty more units of a product in the cart, merging with an
// existing line for the same product. qty <= 0 is a no-op.
func (m *Manager) Add(productID uint, qty int) {
	if qty <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity += qty
			m.persist()
			return
		}
	}
	m.items = append(m.items, Item{ProductID: productID, Quantity: qty})
	m.persist()
}

// UpdateQuantity sets the absolute quantity for a product. A quantity of
// zero or less removes the line entirely.
func (m *Manager) UpdateQuantity(productID uint, qty int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if qty <= 0 {
		m.removeLocked(productID)
		m.persist()
		return
	}
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = qty
			m.persist()
			return
		}
	}
}

// Remove drops a product from the cart regardless of quantity.
func (m *Manager) Remove(productID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(productID)
	m.persist()
}

// Clear empties the cart.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.persist()
}

func (m *Manager) removeLocked(productID uint) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	m.items = kept
}

// Items returns a copy of the current cart lines.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Item(nil), m.items...)
}

// Count is the total number of units across all lines.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// Subtotal prices the cart against a product snapshot. Lines whose product
// is missing from the snapshot contribute nothing; they stay in the cart.
func (m *Manager) Subtotal(products []models.Product) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, item := range m.items {
		for _, product := range products {
			if product.ID == item.ProductID {
				total += product.Price * item.Quantity
				break
			}
		}
	}
	return total
}

// Orphans returns the lines that have no match in the supplied snapshot,
// so a UI can mark them as no longer available.
func (m *Manager) Orphans(products []models.Product) []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orphans []Item
	for _, item := range m.items {
		found := false
		for _, product := range products {
			if product.ID == item.ProductID {
				found = true
				break
			}
		}
		if !found {
			orphans = append(orphans, item)
		}
	}
	return orphans
}

// persist writes the whole collection under the cart key. Failures are
// logged and swallowed; the in-memory cart stays authoritative.
func (m *Manager) persist() {
	raw, err := json.Marshal(m.items)
	if err != nil {
		log.Printf("cart: failed to serialize cart: %v", err)
		return
	}
	if err := m.store.Set(cartKey, raw); err != nil {
		log.Printf("cart: failed to persist cart: %v", err)
	}
}
