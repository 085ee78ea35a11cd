package table

import (
	"fmt"
)

// Cell is a single named value inside a row.
type Cell struct {
	Column string
	Value  string
}

// Row is an insertion-ordered mapping from column name to value.
// A slice of cells rather than a map, so that column order survives
// construction, serialization and schema derivation.
type Row []Cell

// Get returns the value for a column and whether the row carries it.
func (r Row) Get(column string) (string, bool) {
	for _, c := range r {
		if c.Column == column {
			return c.Value, true
		}
	}
	return "", false
}

// Has reports whether the row carries the column.
func (r Row) Has(column string) bool {
	_, ok := r.Get(column)
	return ok
}

// Set overwrites the value for a column, appending the cell if the row
// does not carry it yet. Returns the updated row.
func (r Row) Set(column, value string) Row {
	for i := range r {
		if r[i].Column == column {
			r[i].Value = value
			return r
		}
	}
	return append(r, Cell{Column: column, Value: value})
}

// Delete removes the column's cell if present. Returns the updated row.
func (r Row) Delete(column string) Row {
	for i := range r {
		if r[i].Column == column {
			return append(r[:i], r[i+1:]...)
		}
	}
	return r
}

// Columns returns the row's column names in cell order.
func (r Row) Columns() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Column
	}
	return names
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Table is an ordered sequence of rows plus the canonical column-name
// sequence. The schema is derived from the first row at construction
// time and changes only through explicit column operations; after every
// public mutating operation all rows carry exactly the schema's key set.
//
// A Table exclusively owns its rows. Derived tables (Get, Clone, query
// results) are independent copies and never alias the source storage.
// Not safe for concurrent use.
type Table struct {
	rows    []Row
	columns []string
	cursor  int
}

// New builds a table from a fully materialized row sequence. The
// column-name sequence is taken from the first row's cell order; rows
// are copied, never aliased. An empty input yields an empty table with
// an empty schema.
func New(rows []Row) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}
	t.columns = rows[0].Columns()
	t.rows = make([]Row, len(rows))
	for i, r := range rows {
		t.rows[i] = r.Clone()
	}
	return t
}

// NewWithColumns builds a table with an explicit column-name sequence
// instead of deriving it from the first row. Used by adapters that
// carry the schema out of band (query results, snapshots), where a
// zero-row table must still keep its columns.
func NewWithColumns(columns []string, rows []Row) *Table {
	t := New(rows)
	t.columns = make([]string, len(columns))
	copy(t.columns, columns)
	return t
}

// ColumnNames returns the current column-name sequence. The returned
// slice is a copy; callers cannot mutate the schema through it.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// RowAt returns the row at position index.
func (t *Table) RowAt(index int) (Row, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, fmt.Errorf("%w: index %d, table has %d rows", ErrIndexOutOfRange, index, len(t.rows))
	}
	return t.rows[index], nil
}

// AddColumnName appends name to the schema sequence if not already
// present. Idempotent; does not touch row storage.
func (t *Table) AddColumnName(name string) {
	for _, c := range t.columns {
		if c == name {
			return
		}
	}
	t.columns = append(t.columns, name)
}

// RemoveColumnName removes name from the schema sequence. No-op when
// the name is absent; does not touch row storage.
func (t *Table) RemoveColumnName(name string) {
	for i, c := range t.columns {
		if c == name {
			t.columns = append(t.columns[:i], t.columns[i+1:]...)
			return
		}
	}
}

// Clone returns a deep, independent copy of the table. The copy's
// cursor starts rewound.
func (t *Table) Clone() *Table {
	out := &Table{columns: t.ColumnNames()}
	out.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
