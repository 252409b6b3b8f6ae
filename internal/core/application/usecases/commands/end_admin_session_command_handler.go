package commands

import (
	"context"

	"nexa/internal/core/ports"
)

// EndAdminSessionCommandHandler revokes sessions. Tokens carrying a revoked session
// are rejected from then on even before they expire.
type EndAdminSessionCommandHandler struct {
	sessions ports.AdminSessionRepository
}

func NewEndAdminSessionCommandHandler(sessions ports.AdminSessionRepository) EndAdminSessionCommandHandler {
	return EndAdminSessionCommandHandler{sessions: sessions}
}

// Handle removes the session.
func (h EndAdminSessionCommandHandler) Handle(ctx context.Context, cmd EndAdminSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Delete(ctx, cmd.SessionID())
}
