package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)

	// ErrOrderNotSaved is shown to the customer when no store accepted the order.
	// The checkout stays open so the customer can retry.
	ErrOrderNotSaved = errors.New("Falha ao salvar pedido.")
)

// SubmitOrderCommand places the order drafted in a checkout.
//
// Example:
//
//	cmd, _ := NewSubmitOrderCommand(checkoutID)
//	confirmation, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrDraftIncomplete) {
//	    // ask the customer to fill in the form
//	}
type SubmitOrderCommand struct {
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(checkoutID kernel.UUID) (SubmitOrderCommand, error) {
	if err := checkoutID.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		checkoutID: checkoutID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CheckoutID returns the session whose draft is submitted.
func (c SubmitOrderCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// OrderConfirmation is what the customer sees once the order is stored.
type OrderConfirmation struct {
	OrderID        kernel.UUID
	PackageName    string
	Size           string
	DeliveryDate   kernel.Date
	Total          decimal.Decimal
	FormattedTotal string
}
