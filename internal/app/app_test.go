package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/pkg/config"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		BcryptCost:  4,
		StoreDriver: config.DriverSQLite,
	}
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "inventory.db")
	return cfg
}

func TestNew_SQLite(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(ctx) })

	assert.Contains(t, a.Health, "sqlite")
	assert.NotContains(t, a.Health, "redis")
	require.NoError(t, a.Health["sqlite"](ctx))

	id, err := a.Items.CreateItem(ctx, domain.ItemPayload{Name: "Drake", Description: "d", Price: 14.9, ImageURL: "No url", Amount: 100})
	require.NoError(t, err)

	_, err = a.Users.CreateUser(ctx, "mmbullar", "secret")
	require.NoError(t, err)
	token, err := a.Users.Login(ctx, "mmbullar", "secret")
	require.NoError(t, err)
	require.NoError(t, a.Tokens.Verify(token))

	require.NoError(t, a.Reset(ctx))

	_, err = a.Items.GetItem(ctx, id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	users, err := a.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestNew_UnreachableRedisFails(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)
	cfg.Redis.Addr = "127.0.0.1:1"

	_, err := New(ctx, cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNew_MissingSecret(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)
	cfg.JWTSecret = ""

	_, err := New(ctx, cfg, zerolog.Nop())
	assert.Error(t, err)
}
