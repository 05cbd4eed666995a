package auth

import (
	"strings"
	"testing"

	"billing/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, hasher.Check("correct horse battery", hash))
	assert.False(t, hasher.Check("wrong password", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DummyCheckDoesNotPanic(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotPanics(t, func() { hasher.DummyCheck("anything") })
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
	require.NoError(t, err)

	hash, err := hasher.Hash("password1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	_, err = newBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
