// Package admin models access to the admin panel: a session opened by presenting the
// shared passphrase, valid until it expires or is revoked.
package admin

import (
	"errors"
	"fmt"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created through NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrInvalidPassphrase is returned when the presented passphrase does not match.
	ErrInvalidPassphrase = errors.New("invalid admin passphrase")

	// ErrSessionExpired is returned when a session is used after its expiry.
	ErrSessionExpired = errors.New("admin session expired")
)

// Session is an authenticated admin context. Handlers of admin operations receive it
// explicitly instead of consulting a global flag.
type Session struct {
	id        kernel.UUID
	issuedAt  time.Time
	expiresAt time.Time
	guard     guard.ConstructorGuard
}

// NewSession opens a session at now lasting ttl.
func NewSession(id kernel.UUID, now time.Time, ttl time.Duration) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("issuedAt")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl is invalid", fmt.Errorf("%s is not positive", ttl))
	}

	return &Session{
		id:        id,
		issuedAt:  now,
		expiresAt: now.Add(ttl),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID      { return s.id }
func (s *Session) IssuedAt() time.Time  { return s.issuedAt }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// IsExpired reports whether now is at or past the expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// EnsureActive returns ErrSessionExpired once the session expired.
func (s *Session) EnsureActive(now time.Time) error {
	if s.IsExpired(now) {
		return ErrSessionExpired
	}
	return nil
}
