package commands

import (
	"context"
	"fmt"
	"time"

	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"
)

// SubmitOrderCommandHandler turns a submittable draft into a stored order.
//
// The flow is:
//   - an incomplete draft aborts with order.ErrDraftIncomplete and writes nothing
//   - the order is created in status New with the package name and price snapshot
//   - if the store fails, ErrOrderNotSaved is returned and the draft stays intact
//   - on success the checkout session is closed
type SubmitOrderCommandHandler struct {
	checkouts ports.CheckoutRepository
	orders    ports.OrderStore
	prices    services.PriceFormatter
	now       func() time.Time
	ttl       time.Duration
}

func NewSubmitOrderCommandHandler(
	checkouts ports.CheckoutRepository,
	orders ports.OrderStore,
	prices services.PriceFormatter,
	now func() time.Time,
	ttl time.Duration,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		checkouts: checkouts,
		orders:    orders,
		prices:    prices,
		now:       now,
		ttl:       ttl,
	}
}

// Handle submits the draft and returns the confirmation.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (OrderConfirmation, error) {
	if err := cmd.Validate(); err != nil {
		return OrderConfirmation{}, err
	}

	c, err := loadActiveCheckout(ctx, h.checkouts, cmd.CheckoutID(), h.now(), h.ttl)
	if err != nil {
		return OrderConfirmation{}, err
	}

	o, err := c.PlaceOrder()
	if err != nil {
		return OrderConfirmation{}, err
	}

	if err = h.orders.Create(ctx, o); err != nil {
		return OrderConfirmation{}, fmt.Errorf("%w %w", ErrOrderNotSaved, err)
	}

	// The order is stored; a session left behind by a failed delete expires on its own.
	_ = h.checkouts.Delete(ctx, c.ID())

	return OrderConfirmation{
		OrderID:        o.ID(),
		PackageName:    o.PackageName(),
		Size:           o.Size(),
		DeliveryDate:   o.DeliveryDate(),
		Total:          o.PackagePrice(),
		FormattedTotal: h.prices.Format(o.PackagePrice()),
	}, nil
}
