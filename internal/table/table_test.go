package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabledb/tabledb/internal/table"
)

func sampleRows() []table.Row {
	return []table.Row{
		{{Column: "id", Value: "1"}, {Column: "name", Value: "alice"}, {Column: "qty", Value: "3"}},
		{{Column: "id", Value: "2"}, {Column: "name", Value: "bob"}, {Column: "qty", Value: "1"}},
		{{Column: "id", Value: "3"}, {Column: "name", Value: "carol"}, {Column: "qty", Value: "7"}},
	}
}

func TestNewDerivesSchemaFromFirstRow(t *testing.T) {
	tb := table.New(sampleRows())

	// Schema follows the first row's cell order
	assert.Equal(t, []string{"id", "name", "qty"}, tb.ColumnNames())
	assert.Equal(t, 3, tb.RowCount())

	// Every row carries exactly the schema's key set
	for i := 0; i < tb.RowCount(); i++ {
		row, err := tb.RowAt(i)
		assert.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "qty"}, row.Columns())
	}
}

func TestNewEmpty(t *testing.T) {
	tb := table.New(nil)
	assert.Empty(t, tb.ColumnNames())
	assert.Equal(t, 0, tb.RowCount())
}

func TestNewCopiesRows(t *testing.T) {
	rows := sampleRows()
	tb := table.New(rows)

	// Mutating the input after construction must not affect the table
	rows[0][1].Value = "mallory"

	row, err := tb.RowAt(0)
	require.NoError(t, err)
	name, _ := row.Get("name")
	assert.Equal(t, "alice", name)
}

func TestRowAtOutOfRange(t *testing.T) {
	tb := table.New(sampleRows())

	_, err := tb.RowAt(3)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "index 3")

	_, err = tb.RowAt(-1)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
}

func TestAddColumnNameIdempotent(t *testing.T) {
	tb := table.New(sampleRows())

	tb.AddColumnName("extra")
	tb.AddColumnName("extra")
	assert.Equal(t, []string{"id", "name", "qty", "extra"}, tb.ColumnNames())

	// Removing an absent name is a no-op
	tb.RemoveColumnName("nope")
	tb.RemoveColumnName("extra")
	assert.Equal(t, []string{"id", "name", "qty"}, tb.ColumnNames())
}

func TestColumnNamesIsACopy(t *testing.T) {
	tb := table.New(sampleRows())

	names := tb.ColumnNames()
	names[0] = "hacked"

	assert.Equal(t, []string{"id", "name", "qty"}, tb.ColumnNames())
}

func TestCloneIsIndependent(t *testing.T) {
	tb := table.New(sampleRows())
	cp := tb.Clone()

	require.NoError(t, cp.Set("name", table.Scalar("x")))

	row, err := tb.RowAt(0)
	require.NoError(t, err)
	name, _ := row.Get("name")
	assert.Equal(t, "alice", name)
}

func TestNewWithColumnsKeepsSchemaForEmptyRowSet(t *testing.T) {
	tb := table.NewWithColumns([]string{"a", "b"}, nil)
	assert.Equal(t, []string{"a", "b"}, tb.ColumnNames())
	assert.Equal(t, 0, tb.RowCount())
}
