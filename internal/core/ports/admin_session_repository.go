package ports

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/kernel"
)

// AdminSessionRepository keeps the sessions opened with the admin passphrase.
type AdminSessionRepository interface {
	Add(ctx context.Context, s *admin.Session) error

	// Get returns an errs.ObjectNotFoundError for unknown or revoked sessions.
	Get(ctx context.Context, id kernel.UUID) (*admin.Session, error)

	// Delete revokes a session. Revoking an unknown session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes sessions expired at now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// PassphraseVerifier checks the shared admin passphrase.
type PassphraseVerifier interface {
	// Verify returns admin.ErrInvalidPassphrase on mismatch.
	Verify(passphrase string) error
}
