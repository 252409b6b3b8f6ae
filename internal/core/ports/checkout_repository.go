package ports

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
)

// CheckoutRepository keeps open checkout sessions. Implementations hand out copies,
// so a change is visible to other requests only after Update.
type CheckoutRepository interface {
	Add(ctx context.Context, c *checkout.Checkout) error

	// Get returns an errs.ObjectNotFoundError for unknown sessions.
	Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error)

	Update(ctx context.Context, c *checkout.Checkout) error

	// Delete closes a session. Closing an unknown session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince removes sessions without activity after cutoff and returns
	// how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
