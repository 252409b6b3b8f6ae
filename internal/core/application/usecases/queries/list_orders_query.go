package queries

import (
	"errors"

	"nexa/internal/core/domain/services"
	"nexa/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery reads the admin order list narrowed by a search term and a status.
//
// Example:
//
//	query, err := NewListOrdersQuery("maria", "all")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter services.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses the filters. An empty status or "all" lists every status.
func NewListOrdersQuery(search, status string) (ListOrdersQuery, error) {
	filter, err := services.NewOrderFilter(search, status)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() services.OrderFilter {
	return q.filter
}
