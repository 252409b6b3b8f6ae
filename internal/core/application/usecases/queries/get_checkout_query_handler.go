package queries

import (
	"context"
	"time"

	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"
)

// GetCheckoutQueryHandler reads checkout sessions from the session registry.
type GetCheckoutQueryHandler struct {
	repo   ports.CheckoutRepository
	prices services.PriceFormatter
	now    func() time.Time
	ttl    time.Duration
}

func NewGetCheckoutQueryHandler(
	repo ports.CheckoutRepository,
	prices services.PriceFormatter,
	now func() time.Time,
	ttl time.Duration,
) GetCheckoutQueryHandler {
	return GetCheckoutQueryHandler{repo: repo, prices: prices, now: now, ttl: ttl}
}

// Handle returns the draft read model. Unknown and expired sessions both unwrap to
// errs.ErrObjectNotFound.
func (h GetCheckoutQueryHandler) Handle(ctx context.Context, query GetCheckoutQuery) (GetCheckoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	c, err := activeCheckout(ctx, h.repo, query.CheckoutID(), h.now(), h.ttl)
	if err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	draft := c.Draft()
	picker := c.Picker()
	response := GetCheckoutQueryResponse{
		ID:              c.ID(),
		OpenedAt:        c.OpenedAt(),
		Today:           picker.Today(),
		SundaysDisabled: picker.SundaysDisabled(),
		Size:            draft.Size(),
		Contact:         draft.Contact(),
		DeliveryDate:    draft.DeliveryDate(),
		Address:         draft.Address(),
		Observations:    draft.Observations(),
		Submittable:     draft.IsSubmittable(),
	}

	if pkg, ok := draft.Package(); ok {
		response.PackageID = pkg.ID()
		response.PackageName = pkg.Name()
		response.Price = pkg.Price()
		response.FormattedPrice = h.prices.Format(pkg.Price())
	}

	return response, nil
}
