package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements(`
-- header comment
CREATE TABLE a (id INTEGER);

-- another
CREATE INDEX idx_a ON a (id);
`)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id INTEGER)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (id)", stmts[1])
}

func TestSchema_UnknownDriver(t *testing.T) {
	_, err := Schema("postgres")
	assert.Error(t, err)
}

func TestApplySchema_SQLiteIsIdempotent(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	n, err := ApplySchema(ctx, db, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = ApplySchema(ctx, db, DriverSQLite)
	require.NoError(t, err)

	for _, table := range []string{"venues", "artists", "shows"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestMySQLSchema_HasThreeTables(t *testing.T) {
	ddl, err := Schema(DriverMySQL)
	require.NoError(t, err)
	assert.Len(t, splitStatements(ddl), 3)
}

func TestDemoShowsReferenceDemoEntities(t *testing.T) {
	for i, s := range DemoShows {
		assert.Less(t, s.Artist, len(DemoArtists), "show %d", i)
		assert.Less(t, s.Venue, len(DemoVenues), "show %d", i)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpenSQLite_UnicodeLower(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var got string
	require.NoError(t, db.QueryRow(`SELECT LOWER(?)`, "ÉCOLE Música").Scan(&got))
	assert.Equal(t, "école música", got)
}
