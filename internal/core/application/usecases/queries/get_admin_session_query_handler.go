package queries

import (
	"context"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/ports"
)

// GetAdminSessionQueryHandler returns active sessions only. A revoked session is not
// found; an expired one returns admin.ErrSessionExpired.
type GetAdminSessionQueryHandler struct {
	sessions ports.AdminSessionRepository
	now      func() time.Time
}

func NewGetAdminSessionQueryHandler(sessions ports.AdminSessionRepository, now func() time.Time) GetAdminSessionQueryHandler {
	return GetAdminSessionQueryHandler{sessions: sessions, now: now}
}

func (h GetAdminSessionQueryHandler) Handle(ctx context.Context, query GetAdminSessionQuery) (*admin.Session, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	if err = s.EnsureActive(h.now()); err != nil {
		return nil, err
	}
	return s, nil
}
