package auth

import (
	"errors"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost of the existing password hashes.
const DefaultCost = 10

// Hasher hashes and verifies passwords with bcrypt. The salt is generated per
// call and embedded in the returned hash.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.ErrPasswordTooLong
		}
		return "", apperr.Internal("hash password", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed hash is a
// mismatch, not an error.
func (h *Hasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
