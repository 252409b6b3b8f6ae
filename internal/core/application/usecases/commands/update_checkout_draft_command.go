package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var ErrUpdateCheckoutDraftCommandIsNotConstructed = errors.New(
	"UpdateCheckoutDraftCommand must be created via NewUpdateCheckoutDraftCommand constructor",
)

// DraftChanges lists the checkout fields a customer edited. A nil field is left as it
// is in the draft, so the form can be saved step by step.
type DraftChanges struct {
	PackageID    *string
	Size         *string
	FullName     *string
	WhatsApp     *string
	Email        *string
	CEP          *string
	Street       *string
	Number       *string
	Complement   *string
	Neighborhood *string
	City         *string
	Observations *string
}

// IsEmpty reports whether no field was edited.
func (c DraftChanges) IsEmpty() bool {
	return c == DraftChanges{}
}

// UpdateCheckoutDraftCommand applies a partial edit to the draft of an open checkout.
//
// Example:
//
//	pkg, size := "2pcs", "G"
//	cmd, err := NewUpdateCheckoutDraftCommand(checkoutID, DraftChanges{PackageID: &pkg, Size: &size})
type UpdateCheckoutDraftCommand struct {
	checkoutID kernel.UUID
	changes    DraftChanges

	guard guard.ConstructorGuard
}

// NewUpdateCheckoutDraftCommand validates the session identifier and requires at least
// one edited field.
func NewUpdateCheckoutDraftCommand(checkoutID kernel.UUID, changes DraftChanges) (UpdateCheckoutDraftCommand, error) {
	var changesErr error
	if changes.IsEmpty() {
		changesErr = errs.NewValueIsRequiredError("changes")
	}

	if err := errors.Join(checkoutID.Validate(), changesErr); err != nil {
		return UpdateCheckoutDraftCommand{}, err
	}

	return UpdateCheckoutDraftCommand{
		checkoutID: checkoutID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCheckoutDraftCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutDraftCommandIsNotConstructed)
}

func (c UpdateCheckoutDraftCommand) CheckoutID() kernel.UUID { return c.checkoutID }
func (c UpdateCheckoutDraftCommand) Changes() DraftChanges   { return c.changes }
