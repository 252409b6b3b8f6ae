package queries

import (
	"context"

	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"

	"github.com/samber/lo"
)

// ListOrdersQueryHandler lists stored orders, newest first, as the store returns them.
type ListOrdersQueryHandler struct {
	orders ports.OrderStore
	prices services.PriceFormatter
}

func NewListOrdersQueryHandler(orders ports.OrderStore, prices services.PriceFormatter) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, prices: prices}
}

// Handle returns the orders matching the query filter.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(query.Filter().Apply(stored), func(o *order.Order, _ int) OrderView {
		return newOrderView(o, h.prices)
	}), nil
}
