package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsParseable(t *testing.T) {
	id := NewID()

	parsed, err := ParseID(string(id))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := map[ID]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestParseIDRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abc123"},
		{"too long", "0123456789abcdef0123456789abcdef"},
		{"uppercase hex", "0123456789ABCDEF01234567"},
		{"non-hex characters", "0123456789abcdef0123456g"},
		{"path traversal", "../../../../etc/passwd.."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseID(tc.input)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "verified", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "shipped", "Pending", "PENDING"} {
		_, err := ParseOrderStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}
}

func TestGamePatchApply(t *testing.T) {
	title := "New Title"
	price := 59.99
	inStock := false

	g := Game{Title: "Old Title", Platform: "PS5", Price: 49.99, InStock: true}
	patch := GamePatch{Title: &title, Price: &price, InStock: &inStock}

	assert.False(t, patch.IsZero())
	patch.Apply(&g)

	assert.Equal(t, "New Title", g.Title)
	assert.Equal(t, "PS5", g.Platform)
	assert.Equal(t, 59.99, g.Price)
	assert.False(t, g.InStock)
}

func TestGamePatchIsZero(t *testing.T) {
	assert.True(t, GamePatch{}.IsZero())
}
