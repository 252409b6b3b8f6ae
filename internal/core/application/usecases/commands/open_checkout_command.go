package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"
)

var ErrOpenCheckoutCommandIsNotConstructed = errors.New(
	"OpenCheckoutCommand must be created via NewOpenCheckoutCommand constructor",
)

// OpenCheckoutCommand starts a new checkout session for a customer landing on the
// order form.
//
// Example:
//
//	cmd, err := NewOpenCheckoutCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	c, err := handler.Handle(ctx, cmd)
type OpenCheckoutCommand struct {
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenCheckoutCommand creates the command with the identifier of the new session.
func NewOpenCheckoutCommand(checkoutID kernel.UUID) (OpenCheckoutCommand, error) {
	if err := checkoutID.Validate(); err != nil {
		return OpenCheckoutCommand{}, err
	}

	return OpenCheckoutCommand{
		checkoutID: checkoutID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrOpenCheckoutCommandIsNotConstructed)
}

// CheckoutID returns the identifier of the session to open.
func (c OpenCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}
