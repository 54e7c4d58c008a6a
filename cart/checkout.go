package cart

import (
	"context"
	"time"

	"storefront/models"
)

// checkoutDelay simulates payment processing time.
const checkoutDelay = 2 * time.Second

// Order is the submission payload built from the cart at checkout time.
type Order struct {
	Items    []Item `json:"items"`
	Subtotal int    `json:"subtotal"`
}

// SubmitFunc performs the order submission. The default simulates a
// successful payment after a fixed delay; a real integration can replace
// it as long as it returns nil only on confirmed success.
type SubmitFunc func(ctx context.Context, order Order) error

// Checkout prices the cart against the supplied snapshot, submits the
// order, and removes the submitted lines only after the submission
// succeeds. Lines added while the submission is in flight stay in the
// cart; they were not part of the order.
func (m *Manager) Checkout(ctx context.Context, products []models.Product, submit SubmitFunc) error {
	if submit == nil {
		submit = simulateSubmit
	}
	order := Order{
		Items:    m.Items(),
		Subtotal: m.Subtotal(products),
	}
	if err := submit(ctx, order); err != nil {
		return err
	}
	m.deduct(order.Items)
	return nil
}

// deduct subtracts the submitted quantities from the cart and drops the
// lines that reach zero.
func (m *Manager) deduct(items []Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, submitted := range items {
		for i := range m.items {
			if m.items[i].ProductID == submitted.ProductID {
				m.items[i].Quantity -= submitted.Quantity
				break
			}
		}
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	m.items = kept
	m.persist()
}

func simulateSubmit(ctx context.Context, _ Order) error {
	timer := time.NewTimer(checkoutDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
