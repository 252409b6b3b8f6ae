package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)

	// ErrDeleteNotConfirmed is returned when a delete was requested without the
	// explicit confirmation step.
	ErrDeleteNotConfirmed = errors.New("delete must be confirmed")
)

// DeleteOrderCommand removes an order for good. It can only be built with
// confirmed set, mirroring the confirmation dialog of the admin panel.
type DeleteOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID, confirmed bool) (DeleteOrderCommand, error) {
	var confirmErr error
	if !confirmed {
		confirmErr = ErrDeleteNotConfirmed
	}

	if err := errors.Join(orderID.Validate(), confirmErr); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
