package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword derives the stored digest for a plaintext password: hex
// SHA-256 of the process-wide secret concatenated with the plaintext.
//
// The secret acts as a global salt substitute, so two users with the same
// password produce identical hashes. This is a known weakness kept for
// stored-hash compatibility; moving to per-user salts would invalidate
// every existing hash and needs a migration plan first.
func HashPassword(secret, password string) string {
	sum := sha256.Sum256([]byte(secret + password))
	return hex.EncodeToString(sum[:])
}
