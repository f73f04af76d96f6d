package model

import (
	"crypto/rand"
	"encoding/hex"
)

// ID uniquely identifies a stored entity.
// It is a 24-character lowercase hex string (12 random bytes), matching the
// store-native object-identifier format used in API paths.
type ID string

const idLen = 24

// NewID generates a random entity ID
func NewID() ID {
	b := make([]byte, idLen/2)
	_, _ = rand.Read(b)
	return ID(hex.EncodeToString(b))
}

// ParseID validates an externally supplied ID string.
// Invalid IDs are rejected before any storage lookup is attempted.
func ParseID(s string) (ID, error) {
	if len(s) != idLen {
		return "", ErrInvalidID
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidID
		}
	}
	return ID(s), nil
}
