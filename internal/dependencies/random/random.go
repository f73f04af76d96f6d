package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Random provides random token generation that can be mocked for testing
type Random interface {
	// Token returns n bytes of entropy as a lowercase hex string
	Token(n int) (string, error)
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Token returns n bytes from the CSPRNG as a lowercase hex string
func (r *CryptoRandom) Token(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
