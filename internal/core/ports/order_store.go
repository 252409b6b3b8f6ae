package ports

import (
	"context"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for placed orders. It is implemented by
// the remote store, the local fallback store and the decorator that combines both.
type OrderStore interface {
	// Create stores a new order. The store assigns the identifier and creation time
	// when the order has none yet.
	Create(ctx context.Context, o *order.Order) error

	// List returns every stored order, newest first.
	List(ctx context.Context) ([]*order.Order, error)

	// Get returns one order, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus changes the status and, when notes is not nil, the admin notes.
	// It returns an errs.ObjectNotFoundError when nothing was written.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, notes *string) error

	// Delete removes an order. It returns an errs.ObjectNotFoundError when nothing
	// was removed, so deleting a missing order is distinguishable from success.
	Delete(ctx context.Context, id kernel.UUID) error
}

// OrderReplica receives orders that were captured while the remote store was
// unreachable. Upsert keeps the identifier and creation time of the order.
type OrderReplica interface {
	Upsert(ctx context.Context, o *order.Order) error
}
