package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsDeterministic(t *testing.T) {
	a := HashPassword("secret", "password123")
	b := HashPassword("secret", "password123")
	assert.Equal(t, a, b)
}

func TestHashPasswordIsHexDigest(t *testing.T) {
	assert.Regexp(t, "^[0-9a-f]{64}$", HashPassword("secret", "password123"))
}

func TestHashPasswordDependsOnSecretAndPassword(t *testing.T) {
	base := HashPassword("secret", "password123")
	assert.NotEqual(t, base, HashPassword("other-secret", "password123"))
	assert.NotEqual(t, base, HashPassword("secret", "password124"))
}
