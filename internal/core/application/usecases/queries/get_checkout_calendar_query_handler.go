package queries

import (
	"context"
	"time"

	"nexa/internal/core/ports"
)

// GetCheckoutCalendarQueryHandler renders the month grid of a session's date picker.
// The cutoff is the one fixed when the session was opened.
type GetCheckoutCalendarQueryHandler struct {
	repo ports.CheckoutRepository
	now  func() time.Time
	ttl  time.Duration
}

func NewGetCheckoutCalendarQueryHandler(
	repo ports.CheckoutRepository,
	now func() time.Time,
	ttl time.Duration,
) GetCheckoutCalendarQueryHandler {
	return GetCheckoutCalendarQueryHandler{repo: repo, now: now, ttl: ttl}
}

// Handle returns the requested month.
func (h GetCheckoutCalendarQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutCalendarQuery,
) (GetCheckoutCalendarQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutCalendarQueryResponse{}, err
	}

	c, err := activeCheckout(ctx, h.repo, query.CheckoutID(), h.now(), h.ttl)
	if err != nil {
		return GetCheckoutCalendarQueryResponse{}, err
	}

	picker := c.Picker()
	cells, err := picker.Month(query.Year(), query.Month())
	if err != nil {
		return GetCheckoutCalendarQueryResponse{}, err
	}

	return GetCheckoutCalendarQueryResponse{
		Year:  query.Year(),
		Month: query.Month(),
		Today: picker.Today(),
		Cells: cells,
	}, nil
}
