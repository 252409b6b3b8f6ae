package commands

import (
	"context"
	"errors"
	"time"

	"nexa/internal/core/ports"
)

// SweepExpiredSessionsCommandHandler removes checkouts idle for longer than the
// checkout TTL and admin sessions past their expiry.
type SweepExpiredSessionsCommandHandler struct {
	checkouts   ports.CheckoutRepository
	sessions    ports.AdminSessionRepository
	now         func() time.Time
	checkoutTTL time.Duration
}

func NewSweepExpiredSessionsCommandHandler(
	checkouts ports.CheckoutRepository,
	sessions ports.AdminSessionRepository,
	now func() time.Time,
	checkoutTTL time.Duration,
) SweepExpiredSessionsCommandHandler {
	return SweepExpiredSessionsCommandHandler{
		checkouts:   checkouts,
		sessions:    sessions,
		now:         now,
		checkoutTTL: checkoutTTL,
	}
}

// Handle sweeps both registries. A failure in one does not prevent the other.
func (h SweepExpiredSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd SweepExpiredSessionsCommand,
) (SweepExpiredSessionsResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepExpiredSessionsResult{}, err
	}

	now := h.now()
	var result SweepExpiredSessionsResult
	var checkoutErr, sessionErr error

	if h.checkoutTTL > 0 {
		result.Checkouts, checkoutErr = h.checkouts.DeleteIdleSince(ctx, now.Add(-h.checkoutTTL))
	}
	result.AdminSessions, sessionErr = h.sessions.DeleteExpired(ctx, now)

	return result, errors.Join(checkoutErr, sessionErr)
}
