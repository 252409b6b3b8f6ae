package services

import (
	"strings"

	"nexa/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// AllStatuses is the status filter value that matches every order.
const AllStatuses = "all"

// OrderFilter selects orders in the admin list. An order matches when both hold:
//   - search: the lowercase full name, the WhatsApp number as typed or the lowercase
//     city contains the lowercase term; an empty term matches everything
//   - status: the order status equals the filter, or the filter is "all"
//
// Example:
//
//	f, err := services.NewOrderFilter("recife", "Cancelled")
//	if err != nil {
//	    return err
//	}
//	visible := f.Apply(orders)
type OrderFilter struct {
	term        string
	status      order.Status
	allStatuses bool
}

// NewOrderFilter parses the status filter. An empty status or "all" disables the
// status predicate; anything else must name a status.
func NewOrderFilter(search, status string) (OrderFilter, error) {
	f := OrderFilter{term: strings.ToLower(strings.TrimSpace(search))}

	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, AllStatuses) {
		f.allStatuses = true
		return f, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return OrderFilter{}, err
	}
	f.status = parsed
	return f, nil
}

// Matches reports whether o passes both predicates.
func (f OrderFilter) Matches(o *order.Order) bool {
	return f.matchesSearch(o) && f.matchesStatus(o)
}

// Apply keeps the matching orders, preserving their order.
func (f OrderFilter) Apply(orders []*order.Order) []*order.Order {
	return lo.Filter(orders, func(o *order.Order, _ int) bool {
		return f.Matches(o)
	})
}

func (f OrderFilter) matchesSearch(o *order.Order) bool {
	if f.term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Contact().FullName), f.term) ||
		strings.Contains(o.Contact().WhatsApp, f.term) ||
		strings.Contains(strings.ToLower(o.Address().City), f.term)
}

func (f OrderFilter) matchesStatus(o *order.Order) bool {
	return f.allStatuses || o.Status() == f.status
}
