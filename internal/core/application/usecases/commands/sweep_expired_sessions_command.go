package commands

import (
	"errors"

	"nexa/internal/pkg/guard"
)

var ErrSweepExpiredSessionsCommandIsNotConstructed = errors.New(
	"SweepExpiredSessionsCommand must be created via NewSweepExpiredSessionsCommand constructor",
)

// SweepExpiredSessionsCommand drops idle checkouts and expired admin sessions from
// memory.
type SweepExpiredSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepExpiredSessionsCommand() SweepExpiredSessionsCommand {
	return SweepExpiredSessionsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredSessionsCommandIsNotConstructed)
}

// SweepExpiredSessionsResult counts the removed sessions.
type SweepExpiredSessionsResult struct {
	Checkouts     int
	AdminSessions int
}
