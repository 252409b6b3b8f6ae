package queries

import (
	"context"

	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"
)

type GetOrderQueryHandler struct {
	orders ports.OrderStore
	prices services.PriceFormatter
}

func NewGetOrderQueryHandler(orders ports.OrderStore, prices services.PriceFormatter) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, prices: prices}
}

// Handle returns the order, or an errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(o, h.prices), nil
}
