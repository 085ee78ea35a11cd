package table

// Forward cursor over the table's rows. One live traversal at a time:
// the cursor is part of the table, not a snapshot, so editing row
// values mid-traversal is visible, while adding or removing rows during
// an open traversal is undefined behavior.

// Rewind positions the cursor on the first row.
func (t *Table) Rewind() {
	t.cursor = 0
}

// Valid reports whether the cursor addresses an existing row.
func (t *Table) Valid() bool {
	return t.cursor >= 0 && t.cursor < len(t.rows)
}

// Current returns the row under the cursor. Only meaningful while
// Valid; past the end it returns nil.
func (t *Table) Current() Row {
	if !t.Valid() {
		return nil
	}
	return t.rows[t.cursor]
}

// Key returns the cursor's row index.
func (t *Table) Key() int {
	return t.cursor
}

// Advance moves the cursor one row forward.
func (t *Table) Advance() {
	t.cursor++
}

// Count returns the number of rows, independent of cursor position.
func (t *Table) Count() int {
	return len(t.rows)
}
