package commands

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/ports"
)

// StartAdminSessionCommandHandler checks the passphrase and registers a session that
// lasts ttl. A wrong passphrase returns admin.ErrInvalidPassphrase.
type StartAdminSessionCommandHandler struct {
	verifier ports.PassphraseVerifier
	sessions ports.AdminSessionRepository
	now      func() time.Time
	ttl      time.Duration
}

func NewStartAdminSessionCommandHandler(
	verifier ports.PassphraseVerifier,
	sessions ports.AdminSessionRepository,
	now func() time.Time,
	ttl time.Duration,
) StartAdminSessionCommandHandler {
	return StartAdminSessionCommandHandler{
		verifier: verifier,
		sessions: sessions,
		now:      now,
		ttl:      ttl,
	}
}

// Handle opens the session.
func (h StartAdminSessionCommandHandler) Handle(ctx context.Context, cmd StartAdminSessionCommand) (*admin.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.verifier.Verify(cmd.Passphrase()); err != nil {
		return nil, err
	}

	session, err := admin.NewSession(kernel.NewUUID(), h.now(), h.ttl)
	if err != nil {
		return nil, err
	}

	if err = h.sessions.Add(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
