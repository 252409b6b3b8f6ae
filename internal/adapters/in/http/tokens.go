package http

import (
	"errors"
	"fmt"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "nexa/admin"

var errUnauthorized = errors.New("unauthorized")

// TokenIssuer signs admin sessions as HS256 JWTs. The token only carries the session
// id; revocation and expiry are decided by the session registry.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, now func() time.Time) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errs.NewValueIsRequiredError("token secret")
	}
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: secret, now: now}, nil
}

// Issue returns a token for the session that expires with it.
func (t *TokenIssuer) Issue(s *admin.Session) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		ID:        s.ID().String(),
		Subject:   "admin",
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(s.IssuedAt()),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// SessionID validates the token and returns the session it was issued for.
func (t *TokenIssuer) SessionID(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", errUnauthorized, err)
	}

	id, err := kernel.UUIDFromString(claims.ID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", errUnauthorized, err)
	}
	return id, nil
}
