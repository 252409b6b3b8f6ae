package commands

import (
	"errors"
	"strings"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to a new status, optionally replacing the
// admin notes. Any status may follow any other.
//
// Example:
//
//	notes := "cliente confirmou sábado"
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Scheduled, &notes)
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status
	notes   *string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order identifier and the status. A nil
// notes pointer keeps the current notes.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status, notes *string) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd := ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		cmd.notes = &trimmed
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

// Notes returns the new admin notes, or nil to keep the current ones.
func (c ChangeOrderStatusCommand) Notes() *string { return c.notes }
