package commands

import (
	"errors"

	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var ErrStartAdminSessionCommandIsNotConstructed = errors.New(
	"StartAdminSessionCommand must be created via NewStartAdminSessionCommand constructor",
)

// StartAdminSessionCommand exchanges the shared passphrase for an admin session.
type StartAdminSessionCommand struct {
	passphrase string

	guard guard.ConstructorGuard
}

func NewStartAdminSessionCommand(passphrase string) (StartAdminSessionCommand, error) {
	if passphrase == "" {
		return StartAdminSessionCommand{}, errs.NewValueIsRequiredError("passphrase")
	}

	return StartAdminSessionCommand{
		passphrase: passphrase,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAdminSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartAdminSessionCommandIsNotConstructed)
}

// Passphrase returns the presented secret.
func (c StartAdminSessionCommand) Passphrase() string {
	return c.passphrase
}
