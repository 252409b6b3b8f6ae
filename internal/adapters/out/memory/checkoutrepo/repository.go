// Package checkoutrepo keeps open checkout sessions in process memory. Sessions are
// short lived and tied to one browser tab, so they are not persisted.
package checkoutrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
)

// Repository implements ports.CheckoutRepository with a mutex guarded map. It
// stores and returns clones, so callers never share a session value.
type Repository struct {
	mu        sync.RWMutex
	checkouts map[kernel.UUID]*checkout.Checkout
}

func NewRepository() *Repository {
	return &Repository{checkouts: make(map[kernel.UUID]*checkout.Checkout)}
}

func (r *Repository) Add(_ context.Context, c *checkout.Checkout) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkouts[c.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("checkout", fmt.Errorf("checkout %s already exists", c.ID()))
	}
	r.checkouts[c.ID()] = c.Clone()
	return nil
}

func (r *Repository) Get(_ context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkouts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("checkout", id.String())
	}
	return c.Clone(), nil
}

func (r *Repository) Update(_ context.Context, c *checkout.Checkout) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkouts[c.ID()]; !ok {
		return errs.NewObjectNotFoundError("checkout", c.ID().String())
	}
	r.checkouts[c.ID()] = c.Clone()
	return nil
}

func (r *Repository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.checkouts, id)
	return nil
}

func (r *Repository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, c := range r.checkouts {
		if c.LastActivityAt().Before(cutoff) {
			delete(r.checkouts, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of open sessions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checkouts)
}
