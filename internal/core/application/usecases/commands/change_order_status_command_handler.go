package commands

import (
	"context"

	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status change right away and returns the
// updated order, so an open detail view can refresh from the response.
type ChangeOrderStatusCommandHandler struct {
	orders ports.OrderStore
}

func NewChangeOrderStatusCommandHandler(orders ports.OrderStore) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders}
}

// Handle updates the order and reads it back. An order missing from every store
// yields an errs.ObjectNotFoundError.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.orders.UpdateStatus(ctx, cmd.OrderID(), cmd.Status(), cmd.Notes()); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, cmd.OrderID())
}
