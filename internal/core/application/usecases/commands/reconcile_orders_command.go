package commands

import (
	"errors"

	"nexa/internal/pkg/guard"
)

var ErrReconcileOrdersCommandIsNotConstructed = errors.New(
	"ReconcileOrdersCommand must be created via NewReconcileOrdersCommand constructor",
)

// ReconcileOrdersCommand copies orders captured in the local fallback store to the
// remote store and then drops the local copies.
type ReconcileOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileOrdersCommand creates the parameterless command.
func NewReconcileOrdersCommand() ReconcileOrdersCommand {
	return ReconcileOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrdersCommandIsNotConstructed)
}

// ReconcileOrdersResult counts what a run did. Skipped is set when no remote store is
// configured.
type ReconcileOrdersResult struct {
	Pending int
	Pushed  int
	Failed  int
	Skipped bool
}
