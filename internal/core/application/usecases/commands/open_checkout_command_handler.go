package commands

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/ports"
)

// OpenCheckoutCommandHandler opens checkout sessions. The date picker cutoff is the
// current day in the shop time zone, taken from now.
type OpenCheckoutCommandHandler struct {
	repo            ports.CheckoutRepository
	now             func() time.Time
	sundaysDisabled bool
}

// NewOpenCheckoutCommandHandler creates the handler. now must return the time in the
// shop location; sundaysDisabled enables the Monday to Saturday delivery policy.
func NewOpenCheckoutCommandHandler(
	repo ports.CheckoutRepository,
	now func() time.Time,
	sundaysDisabled bool,
) OpenCheckoutCommandHandler {
	return OpenCheckoutCommandHandler{
		repo:            repo,
		now:             now,
		sundaysDisabled: sundaysDisabled,
	}
}

// Handle opens the session and registers it.
func (h OpenCheckoutCommandHandler) Handle(ctx context.Context, cmd OpenCheckoutCommand) (*checkout.Checkout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var opts []checkout.DatePickerOption
	if h.sundaysDisabled {
		opts = append(opts, checkout.WithSundaysDisabled())
	}

	c, err := checkout.NewCheckout(cmd.CheckoutID(), h.now(), opts...)
	if err != nil {
		return nil, err
	}

	if err = h.repo.Add(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
