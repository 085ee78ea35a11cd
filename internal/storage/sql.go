package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tabledb/tabledb/internal/table"
)

// Dialect selects how the schema is rendered when a table is turned
// into SQL.
type Dialect string

const (
	// DialectSQLite renders the column list bare and untyped.
	DialectSQLite Dialect = "sqlite"
	// DialectMySQL types every column as VARCHAR(255).
	DialectMySQL Dialect = "mysql"
	// DialectDuckDB types every column as VARCHAR; used by the bridge.
	DialectDuckDB Dialect = "duckdb"
)

// ErrUnsupportedDialect means SQL rendering was asked for an engine it
// does not recognize. Rendering never falls back to a best-effort
// guess.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// CreateTableSQL renders a CREATE TABLE statement for the table's
// schema in the given dialect.
func CreateTableSQL(t *table.Table, tableName string, dialect Dialect) (string, error) {
	columns := t.ColumnNames()
	defs := make([]string, len(columns))

	switch dialect {
	case DialectSQLite:
		copy(defs, columns)
	case DialectMySQL:
		for i, col := range columns {
			defs[i] = col + " VARCHAR(255)"
		}
	case DialectDuckDB:
		for i, col := range columns {
			defs[i] = col + " VARCHAR"
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return fmt.Sprintf("CREATE TABLE %s (%s);", tableName, strings.Join(defs, ", ")), nil
}

// InsertSQL renders one INSERT statement per row, in row order, with
// values quoted as SQL string literals.
func InsertSQL(t *table.Table, tableName string) string {
	columns := t.ColumnNames()
	var b strings.Builder

	for i := 0; i < t.RowCount(); i++ {
		row, err := t.RowAt(i)
		if err != nil {
			break
		}
		values := make([]string, len(columns))
		for j, col := range columns {
			v, _ := row.Get(col)
			values[j] = quoteSQL(v)
		}
		fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (%s);\n",
			tableName, strings.Join(columns, ", "), strings.Join(values, ", "))
	}

	return b.String()
}

// ToSQL renders the whole table as a CREATE TABLE statement followed
// by one INSERT per row.
func ToSQL(t *table.Table, tableName string, dialect Dialect) (string, error) {
	create, err := CreateTableSQL(t, tableName, dialect)
	if err != nil {
		return "", err
	}
	return create + "\n" + InsertSQL(t, tableName), nil
}

// quoteSQL renders v as a single-quoted SQL string literal.
func quoteSQL(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
