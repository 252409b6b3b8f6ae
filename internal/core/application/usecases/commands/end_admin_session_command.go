package commands

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"
)

var ErrEndAdminSessionCommandIsNotConstructed = errors.New(
	"EndAdminSessionCommand must be created via NewEndAdminSessionCommand constructor",
)

// EndAdminSessionCommand revokes an admin session (logout).
type EndAdminSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEndAdminSessionCommand(sessionID kernel.UUID) (EndAdminSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return EndAdminSessionCommand{}, err
	}

	return EndAdminSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EndAdminSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndAdminSessionCommandIsNotConstructed)
}

// SessionID returns the session to revoke.
func (c EndAdminSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
