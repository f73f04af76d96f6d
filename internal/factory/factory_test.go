package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamestorehq/gamestore/internal/storage/memory"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.CatalogService)
	assert.NotNil(t, app.OrderService)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewRequiresRedisConfigForRedis(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewTestAppWiresMocks(t *testing.T) {
	app := NewTestApp()

	require.NotNil(t, app.MockClock)
	require.NotNil(t, app.MockRandom)
	assert.Equal(t, app.MockClock, app.Clock)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), app.MockClock.Now())

	// Deterministic token sequence comes from the mock
	app.MockRandom.QueueToken("fixed-token")
	session, err := app.AuthService.Register(context.Background(), "Alice", "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fixed-token", session.Token)
}
