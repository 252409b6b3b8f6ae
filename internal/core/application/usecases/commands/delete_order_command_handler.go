package commands

import (
	"context"

	"nexa/internal/core/ports"
)

// DeleteOrderCommandHandler deletes orders. Deleting an unknown order returns an
// errs.ObjectNotFoundError and changes nothing.
type DeleteOrderCommandHandler struct {
	orders ports.OrderStore
}

func NewDeleteOrderCommandHandler(orders ports.OrderStore) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle removes the order.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.Delete(ctx, cmd.OrderID())
}
