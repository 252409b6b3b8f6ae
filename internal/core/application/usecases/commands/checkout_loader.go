package commands

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/ports"
)

// loadActiveCheckout fetches a session and rejects it once idle for longer than ttl.
// Expired sessions are removed on the spot.
func loadActiveCheckout(
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
		_ = repo.Delete(ctx, id)
		return nil, err
	}

	return c, nil
}
