package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestDB creates a fresh in-memory database with all migrations applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(context.Background(), db, zerolog.Nop()), "migrating test database")
	return db
}
