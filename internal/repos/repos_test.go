package repos_test

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"mercadito/internal/repos"
)

// testDB connects to the database named by TEST_DATABASE_URL and returns it
// with a clean productos table. Integration tests skip when no database is
// available.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration test")
	}
	db, err := repos.OpenDB(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`TRUNCATE productos RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}
