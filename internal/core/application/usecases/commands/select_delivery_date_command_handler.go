package commands

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/ports"
)

// SelectDeliveryDateCommandHandler sets the delivery date through the date picker of
// the session. A disabled date returns checkout.ErrDeliveryDateDisabled and keeps the
// previous choice.
type SelectDeliveryDateCommandHandler struct {
	repo ports.CheckoutRepository
	now  func() time.Time
	ttl  time.Duration
}

func NewSelectDeliveryDateCommandHandler(
	repo ports.CheckoutRepository,
	now func() time.Time,
	ttl time.Duration,
) SelectDeliveryDateCommandHandler {
	return SelectDeliveryDateCommandHandler{repo: repo, now: now, ttl: ttl}
}

// Handle selects the date and stores the session.
func (h SelectDeliveryDateCommandHandler) Handle(
	ctx context.Context,
	cmd SelectDeliveryDateCommand,
) (*checkout.Checkout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	c, err := loadActiveCheckout(ctx, h.repo, cmd.CheckoutID(), now, h.ttl)
	if err != nil {
		return nil, err
	}

	if err = c.SelectDeliveryDate(cmd.DeliveryDate()); err != nil {
		return nil, err
	}

	c.Touch(now)
	if err = h.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
