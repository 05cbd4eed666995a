package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"billing/internal/domain/service"
)

// sha256TokenHasher fingerprints refresh tokens. Signed tokens exceed bcrypt's 72 byte input limit.
type sha256TokenHasher struct{}

// NewTokenHasher returns the SHA-256 refresh token hasher.
func NewTokenHasher() service.TokenHasher {
	return sha256TokenHasher{}
}

// Hash returns the hex encoded SHA-256 of the token.
func (sha256TokenHasher) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// Equal compares the token's fingerprint with hash in constant time.
func (h sha256TokenHasher) Equal(token, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(token)), []byte(hash)) == 1
}
