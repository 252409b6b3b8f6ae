package queries

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"
)

var ErrGetAdminSessionQueryIsNotConstructed = errors.New(
	"GetAdminSessionQuery must be created via NewGetAdminSessionQuery constructor",
)

// GetAdminSessionQuery resolves the session carried by an admin token.
type GetAdminSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAdminSessionQuery(sessionID kernel.UUID) (GetAdminSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetAdminSessionQuery{}, err
	}

	return GetAdminSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdminSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminSessionQueryIsNotConstructed)
}

func (q GetAdminSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}
