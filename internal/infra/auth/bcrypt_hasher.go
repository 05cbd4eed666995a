package auth

import (
	"golang.org/x/crypto/bcrypt"

	"billing/config"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/service"
	"billing/internal/errors"
)

// dummyPassword is hashed once at start-up so that sign-ins for unknown emails cost the same as real ones.
const dummyPassword = "dummy-password-for-timing"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher is the constructor for bcryptHasher, using auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return newBcryptHasher(cost)
}

func newBcryptHasher(cost int) (*bcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range", cost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy hash")
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCheck runs a comparison whose result is discarded.
func (h *bcryptHasher) DummyCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
