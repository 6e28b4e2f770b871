package auth

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// MinHashCost is the floor for the bcrypt work factor. Configured values
// below it are raised, never honoured.
const MinHashCost = 12

// PasswordHasher produces and verifies salted bcrypt password hashes.
// Each Hash call generates a fresh salt, so two hashes of the same
// plaintext never compare equal; only Verify is a valid confirmation.
type PasswordHasher struct {
	cost int
	log  zerolog.Logger
}

func NewPasswordHasher(cost int, log zerolog.Logger) *PasswordHasher {
	if cost < MinHashCost {
		cost = MinHashCost
	}
	return &PasswordHasher{cost: cost, log: log}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// legacy non-bcrypt stored value is treated as a mismatch with a warning
// log, never as a request failure.
func (h *PasswordHasher) Verify(plaintext, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		h.log.Warn().Err(err).Msg("stored password hash could not be verified")
	}
	return false
}
