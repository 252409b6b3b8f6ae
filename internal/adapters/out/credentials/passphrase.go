// Package credentials checks the shared admin passphrase. The plain passphrase is
// hashed once with bcrypt and dropped, so only the hash stays in memory.
package credentials

import (
	"errors"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier implements ports.PassphraseVerifier.
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier hashes passphrase with the given cost. A cost below bcrypt.MinCost
// uses bcrypt.DefaultCost.
func NewBcryptVerifier(passphrase string, cost int) (*BcryptVerifier, error) {
	if passphrase == "" {
		return nil, errs.NewValueIsRequiredError("admin passphrase")
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), cost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("admin passphrase", err)
	}
	return &BcryptVerifier{hash: hash}, nil
}

func (v *BcryptVerifier) Verify(passphrase string) error {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(passphrase))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return admin.ErrInvalidPassphrase
	}
	return err
}
