package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var ErrSelectDeliveryDateCommandIsNotConstructed = errors.New(
	"SelectDeliveryDateCommand must be created via NewSelectDeliveryDateCommand constructor",
)

// SelectDeliveryDateCommand picks the delivery day of an open checkout.
type SelectDeliveryDateCommand struct {
	checkoutID   kernel.UUID
	deliveryDate kernel.Date

	guard guard.ConstructorGuard
}

// NewSelectDeliveryDateCommand validates both identifiers. Whether the date can be
// chosen is decided by the checkout date picker.
func NewSelectDeliveryDateCommand(checkoutID kernel.UUID, deliveryDate kernel.Date) (SelectDeliveryDateCommand, error) {
	var dateErr error
	if err := deliveryDate.Validate(); err != nil {
		dateErr = errs.NewValueIsRequiredErrorWithCause("deliveryDate", err)
	}

	if err := errors.Join(checkoutID.Validate(), dateErr); err != nil {
		return SelectDeliveryDateCommand{}, err
	}

	return SelectDeliveryDateCommand{
		checkoutID:   checkoutID,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrSelectDeliveryDateCommandIsNotConstructed)
}

func (c SelectDeliveryDateCommand) CheckoutID() kernel.UUID   { return c.checkoutID }
func (c SelectDeliveryDateCommand) DeliveryDate() kernel.Date { return c.deliveryDate }
