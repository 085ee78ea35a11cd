package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledb/tabledb/internal/bridge"
	"github.com/tabledb/tabledb/internal/storage"
	"github.com/tabledb/tabledb/internal/table"
)

func peopleTable() *table.Table {
	return table.New([]table.Row{
		{{Column: "id", Value: "1"}, {Column: "name", Value: "alice"}, {Column: "city", Value: "berlin"}},
		{{Column: "id", Value: "2"}, {Column: "name", Value: "bob"}, {Column: "city", Value: "paris"}},
		{{Column: "id", Value: "3"}, {Column: "name", Value: "carol"}, {Column: "city", Value: "berlin"}},
	})
}

func TestQueryWithOwnedEngine(t *testing.T) {
	// nil db: the bridge opens its own in-memory engine for the call
	result, err := bridge.Query(nil, peopleTable(), "people",
		"SELECT name FROM people WHERE city = 'berlin' ORDER BY name", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, result.ColumnNames())
	assert.Equal(t, 2, result.RowCount())

	row, _ := result.RowAt(0)
	name, _ := row.Get("name")
	assert.Equal(t, "alice", name)

	row, _ = result.RowAt(1)
	name, _ = row.Get("name")
	assert.Equal(t, "carol", name)
}

func TestQueryWithSharedHandle(t *testing.T) {
	db, err := bridge.Open()
	require.NoError(t, err)
	defer db.Close()

	src := peopleTable()

	// First query materializes the table
	result, err := bridge.Query(db, src, "people", "SELECT COUNT(*) AS n FROM people", storage.DialectDuckDB)
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount())
	row, _ := result.RowAt(0)
	n, _ := row.Get("n")
	assert.Equal(t, "3", n)

	// A second query against the same handle replaces the table
	// rather than colliding with it
	result, err = bridge.Query(db, src, "people", "SELECT id, city FROM people ORDER BY id DESC", storage.DialectDuckDB)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "city"}, result.ColumnNames())
	assert.Equal(t, 3, result.RowCount())
	row, _ = result.RowAt(0)
	id, _ := row.Get("id")
	assert.Equal(t, "3", id)
}

func TestQueryResultIsIndependent(t *testing.T) {
	src := peopleTable()
	result, err := bridge.Query(nil, src, "people", "SELECT * FROM people ORDER BY id", "")
	require.NoError(t, err)

	require.NoError(t, result.Set("name", table.Scalar("x")))

	row, _ := src.RowAt(0)
	name, _ := row.Get("name")
	assert.Equal(t, "alice", name)
}

func TestQueryBadSQL(t *testing.T) {
	_, err := bridge.Query(nil, peopleTable(), "people", "SELEC nope", "")
	assert.Error(t, err)
}

func TestQueryUnsupportedDialect(t *testing.T) {
	db, err := bridge.Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = bridge.Query(db, peopleTable(), "people", "SELECT 1", storage.Dialect("oracle"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedDialect)
}
