package commands

import (
	"context"
	"errors"
	"fmt"

	"nexa/internal/core/ports"
)

// ReconcileOrdersCommandHandler moves orders stranded in the local store to the
// remote one. Each order is upserted remotely with its original identifier and
// creation time, then deleted locally. A failing order stays local for the next run
// and does not stop the others.
type ReconcileOrdersCommandHandler struct {
	local  ports.OrderStore
	remote ports.OrderReplica
}

// NewReconcileOrdersCommandHandler creates the handler. A nil remote makes every run
// a no-op.
func NewReconcileOrdersCommandHandler(local ports.OrderStore, remote ports.OrderReplica) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{local: local, remote: remote}
}

// Handle runs one reconciliation pass.
func (h ReconcileOrdersCommandHandler) Handle(ctx context.Context, cmd ReconcileOrdersCommand) (ReconcileOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileOrdersResult{}, err
	}

	if h.remote == nil {
		return ReconcileOrdersResult{Skipped: true}, nil
	}

	pending, err := h.local.List(ctx)
	if err != nil {
		return ReconcileOrdersResult{}, err
	}

	result := ReconcileOrdersResult{Pending: len(pending)}
	var failures []error
	for _, o := range pending {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		if err = h.remote.Upsert(ctx, o); err != nil {
			result.Failed++
			failures = append(failures, fmt.Errorf("push order %s: %w", o.ID(), err))
			continue
		}

		if err = h.local.Delete(ctx, o.ID()); err != nil {
			result.Failed++
			failures = append(failures, fmt.Errorf("drop local order %s: %w", o.ID(), err))
			continue
		}

		result.Pushed++
	}

	return result, errors.Join(failures...)
}
