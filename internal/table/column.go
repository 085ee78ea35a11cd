package table

import (
	"fmt"
	"regexp"
)

// Assignment is the right-hand side of a column Set. The three forms a
// caller can hand over are a closed set: a scalar broadcast to every
// row, a per-row compute function, or the sole column of another table
// joined by position.
type Assignment interface {
	isAssignment()
}

type scalarAssignment struct {
	value string
}

type computeAssignment struct {
	fn func(current string, index int) string
}

type columnAssignment struct {
	src *Table
}

func (scalarAssignment) isAssignment()  {}
func (computeAssignment) isAssignment() {}
func (columnAssignment) isAssignment()  {}

// Scalar broadcasts one value to every row of the target column. The
// column is created when absent.
func Scalar(value string) Assignment {
	return scalarAssignment{value: value}
}

// Compute rewrites each row's value as fn(current, rowIndex), visiting
// rows in canonical order. The target column must already exist; fn
// must not depend on earlier rows having been visited in the same pass.
func Compute(fn func(current string, index int) string) Assignment {
	return computeAssignment{fn: fn}
}

// FromColumn assigns the sole column of src to the target column, row
// by row, aligned by position rather than by key. src must have exactly
// one column and the same row count as the target.
func FromColumn(src *Table) Assignment {
	return columnAssignment{src: src}
}

// Has reports whether column is part of the schema sequence.
func (t *Table) Has(column string) bool {
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

// requireColumn guards column-addressed reads and removals.
func (t *Table) requireColumn(column string) error {
	if !t.Has(column) {
		return fmt.Errorf("%w: %q not in schema %v", ErrInvalidColumn, column, t.columns)
	}
	return nil
}

// ExistsInAllRows reports whether every row currently carries column as
// a key. Distinct from Has: it probes actual row contents and detects
// partial or ragged state, not schema membership.
func (t *Table) ExistsInAllRows(column string) bool {
	for _, r := range t.rows {
		if !r.Has(column) {
			return false
		}
	}
	return true
}

// Get extracts column as a new single-column table, one row per source
// row in original order. The result is an independent copy, never a
// view into the source.
func (t *Table) Get(column string) (*Table, error) {
	if err := t.requireColumn(column); err != nil {
		return nil, err
	}
	out := &Table{columns: []string{column}}
	out.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		v, _ := r.Get(column)
		out.rows[i] = Row{{Column: column, Value: v}}
	}
	return out, nil
}

// Set assigns a value to column in every row, dispatching on the
// assignment form. No atomicity across the row loop: a failing call may
// leave earlier rows already assigned.
func (t *Table) Set(column string, a Assignment) error {
	switch rhs := a.(type) {
	case scalarAssignment:
		t.AddColumnName(column)
		for i := range t.rows {
			t.rows[i] = t.rows[i].Set(column, rhs.value)
		}
		return nil
	case computeAssignment:
		// The compute form reads the current value, so it never
		// creates the column implicitly.
		if err := t.requireColumn(column); err != nil {
			return err
		}
		for i := range t.rows {
			current, _ := t.rows[i].Get(column)
			t.rows[i] = t.rows[i].Set(column, rhs.fn(current, i))
		}
		return nil
	case columnAssignment:
		src := rhs.src
		if len(src.columns) != 1 {
			return fmt.Errorf("%w: source table has %d columns, want exactly 1", ErrSchemaMismatch, len(src.columns))
		}
		if src.RowCount() != t.RowCount() {
			return fmt.Errorf("%w: source has %d rows, target has %d", ErrRowCountMismatch, src.RowCount(), t.RowCount())
		}
		sole := src.columns[0]
		t.AddColumnName(column)
		for i := range t.rows {
			v, _ := src.rows[i].Get(sole)
			t.rows[i] = t.rows[i].Set(column, v)
		}
		return nil
	default:
		return fmt.Errorf("unknown assignment form %T", a)
	}
}

// Unset removes column from the schema and from every row.
func (t *Table) Unset(column string) error {
	if err := t.requireColumn(column); err != nil {
		return err
	}
	for i := range t.rows {
		t.rows[i] = t.rows[i].Delete(column)
	}
	t.RemoveColumnName(column)
	return nil
}

// AppendRows appends a copy of every row of other, reshaped to the
// target's schema: cells are picked from other's rows by column name in
// the target's column order, so other's own schema order is irrelevant.
// A source row lacking a target column aborts with ErrMissingColumn.
// An empty other is a no-op.
func (t *Table) AppendRows(other *Table) error {
	if other == nil || other.RowCount() == 0 {
		return nil
	}
	for i, src := range other.rows {
		row := make(Row, 0, len(t.columns))
		for _, col := range t.columns {
			v, ok := src.Get(col)
			if !ok {
				return fmt.Errorf("%w: appended row %d lacks column %q", ErrMissingColumn, i, col)
			}
			row = append(row, Cell{Column: col, Value: v})
		}
		t.rows = append(t.rows, row)
	}
	return nil
}

// MapRows replaces every row with fn's result, visiting rows in
// canonical order. For tables with exactly one column fn receives and
// must return the bare value of that column instead of the whole Row;
// multi-column tables pass and expect Row. A result of the wrong
// dynamic type aborts the pass.
func (t *Table) MapRows(fn func(v interface{}, index int) interface{}) error {
	single := len(t.columns) == 1
	for i := range t.rows {
		if single {
			col := t.columns[0]
			current, _ := t.rows[i].Get(col)
			mapped, ok := fn(current, i).(string)
			if !ok {
				return fmt.Errorf("row %d: single-column map must return string", i)
			}
			t.rows[i] = t.rows[i].Set(col, mapped)
			continue
		}
		mapped, ok := fn(t.rows[i].Clone(), i).(Row)
		if !ok {
			return fmt.Errorf("row %d: map must return a Row", i)
		}
		t.rows[i] = mapped
	}
	return nil
}

// ReplaceMatching rewrites every cell value of every row through a
// regexp substitution, column-name-agnostic.
func (t *Table) ReplaceMatching(pattern, replacement string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			t.rows[i][j].Value = re.ReplaceAllString(t.rows[i][j].Value, replacement)
		}
	}
	return nil
}
