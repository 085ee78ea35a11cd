package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledb/tabledb/internal/storage"
	"github.com/tabledb/tabledb/internal/table"
)

const sampleCSV = "id,name,qty\n1,alice,3\n2,bob,1\n"

func TestFromCSV(t *testing.T) {
	tb, err := storage.FromCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "qty"}, tb.ColumnNames())
	assert.Equal(t, 2, tb.RowCount())

	row, err := tb.RowAt(1)
	require.NoError(t, err)
	name, _ := row.Get("name")
	assert.Equal(t, "bob", name)
}

func TestFromCSVEmptyInput(t *testing.T) {
	tb, err := storage.FromCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.RowCount())
	assert.Empty(t, tb.ColumnNames())
}

func TestFromCSVHeaderOnly(t *testing.T) {
	tb, err := storage.FromCSV(strings.NewReader("id,name\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tb.ColumnNames())
	assert.Equal(t, 0, tb.RowCount())
}

func TestCSVRoundTrip(t *testing.T) {
	tb, err := storage.FromCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, storage.ToCSV(tb, &buf))
	assert.Equal(t, sampleCSV, buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tabledb_json")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	tb, err := storage.FromCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	path := filepath.Join(tmpDir, "snap.json")
	require.NoError(t, storage.SaveJSON(tb, path))

	got, err := storage.LoadJSON(path)
	require.NoError(t, err)

	// Column order survives the round trip
	assert.Equal(t, tb.ColumnNames(), got.ColumnNames())
	assert.Equal(t, tb.RowCount(), got.RowCount())
	for i := 0; i < tb.RowCount(); i++ {
		want, _ := tb.RowAt(i)
		have, _ := got.RowAt(i)
		assert.Equal(t, want, have)
	}
}

func TestJSONRoundTripKeepsSchemaWithoutRows(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tabledb_json_empty")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	tb := table.NewWithColumns([]string{"a", "b"}, nil)
	path := filepath.Join(tmpDir, "empty.json")
	require.NoError(t, storage.SaveJSON(tb, path))

	got, err := storage.LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.ColumnNames())
	assert.Equal(t, 0, got.RowCount())
}

func TestCreateTableSQLDialects(t *testing.T) {
	tb := table.NewWithColumns([]string{"id", "name"}, nil)

	// SQLite renders a bare untyped column list
	sqlite, err := storage.CreateTableSQL(tb, "people", storage.DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE people (id, name);", sqlite)

	// MySQL types every column as VARCHAR(255)
	mysql, err := storage.CreateTableSQL(tb, "people", storage.DialectMySQL)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE people (id VARCHAR(255), name VARCHAR(255));", mysql)

	duck, err := storage.CreateTableSQL(tb, "people", storage.DialectDuckDB)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE people (id VARCHAR, name VARCHAR);", duck)
}

func TestCreateTableSQLUnsupportedDialect(t *testing.T) {
	tb := table.NewWithColumns([]string{"id"}, nil)

	_, err := storage.CreateTableSQL(tb, "people", storage.Dialect("oracle"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedDialect)
	assert.Contains(t, err.Error(), "oracle")

	_, err = storage.ToSQL(tb, "people", storage.Dialect("oracle"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedDialect)
}

func TestInsertSQL(t *testing.T) {
	tb := table.New([]table.Row{
		{{Column: "id", Value: "1"}, {Column: "name", Value: "o'hara"}},
	})

	got := storage.InsertSQL(tb, "people")
	assert.Equal(t, "INSERT INTO people (id, name) VALUES ('1', 'o''hara');\n", got)
}

func TestToSQL(t *testing.T) {
	tb := table.New([]table.Row{
		{{Column: "id", Value: "1"}, {Column: "name", Value: "alice"}},
		{{Column: "id", Value: "2"}, {Column: "name", Value: "bob"}},
	})

	script, err := storage.ToSQL(tb, "people", storage.DialectSQLite)
	require.NoError(t, err)
	assert.Contains(t, script, "CREATE TABLE people (id, name);")
	assert.Contains(t, script, "INSERT INTO people (id, name) VALUES ('1', 'alice');")
	assert.Contains(t, script, "INSERT INTO people (id, name) VALUES ('2', 'bob');")
}

func TestParquetRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tabledb_parquet")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	tb, err := storage.FromCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.NoError(t, storage.ToParquet(tb, tmpDir, "sample"))

	got, err := storage.FromParquet(tmpDir, "sample")
	require.NoError(t, err)

	assert.Equal(t, tb.ColumnNames(), got.ColumnNames())
	assert.Equal(t, tb.RowCount(), got.RowCount())
	for i := 0; i < tb.RowCount(); i++ {
		want, _ := tb.RowAt(i)
		have, _ := got.RowAt(i)
		assert.Equal(t, want, have)
	}
}
