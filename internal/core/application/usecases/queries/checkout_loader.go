package queries

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/ports"
)

// activeCheckout reads a session and reports checkout.ErrCheckoutExpired once it was
// idle for longer than ttl. Removal is left to the commands and the sweep job.
func activeCheckout(
	ctx context.Context,
	repo ports.CheckoutRepository,
	id kernel.UUID,
	now time.Time,
	ttl time.Duration,
) (*checkout.Checkout, error) {
	c, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = c.EnsureActive(now, ttl); err != nil {
		return nil, err
	}
	return c, nil
}
