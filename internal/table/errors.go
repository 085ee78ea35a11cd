package table

import "errors"

// Error kinds raised by table operations. All carry additional context
// (column name, row index, value or format) via fmt.Errorf wrapping;
// match them with errors.Is.
var (
	// ErrInvalidColumn means a column name is not part of the schema.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrSchemaMismatch means a single-column-table assignment source
	// had more or fewer than one column.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrRowCountMismatch means a single-column-table assignment source
	// and target differ in row count.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrDateParse means none of the supplied date layouts parsed a value.
	ErrDateParse = errors.New("date parse failed")

	// ErrIndexOutOfRange means a row index addressed a non-existent row.
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrMissingColumn means an appended source row lacked a column the
	// target schema requires.
	ErrMissingColumn = errors.New("missing column")
)
