// Package bridge runs ad-hoc SQL queries against a table's own
// contents by materializing it inside an embedded relational engine.
// The engine is DuckDB behind database/sql; the bridge only ships rows
// in and wraps result rows back out.
package bridge

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tabledb/tabledb/internal/storage"
	"github.com/tabledb/tabledb/internal/table"
	"github.com/tabledb/tabledb/internal/types"
)

// Open returns a handle to a fresh in-memory DuckDB instance.
func Open() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory engine: %w", err)
	}
	return db, nil
}

// Query materializes src as tableName inside db, runs query against it
// and returns the result set as a new independent table. Result column
// order follows the result set, result values are rendered as strings
// and SQL NULLs become empty values.
//
// A nil db gets an in-memory DuckDB instance owned for the duration of
// the call. Any existing table of the same name inside db is replaced.
func Query(db *sql.DB, src *table.Table, tableName, query string, dialect storage.Dialect) (*table.Table, error) {
	if db == nil {
		owned, err := Open()
		if err != nil {
			return nil, err
		}
		defer owned.Close()
		db = owned
		if dialect == "" {
			dialect = storage.DialectDuckDB
		}
	}

	script, err := storage.ToSQL(src, tableName, dialect)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s;", tableName)); err != nil {
		return nil, fmt.Errorf("failed to reset table %s: %w", tableName, err)
	}
	if _, err := db.Exec(script); err != nil {
		return nil, fmt.Errorf("failed to materialize table %s: %w", tableName, err)
	}
	types.GlobalLogger.Debug("materialized %d rows as %s", src.RowCount(), tableName)

	result, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		return nil, err
	}

	var rows []table.Row
	for result.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := result.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan result row %d: %w", len(rows), err)
		}
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = table.Cell{Column: col, Value: values[i].String}
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	return table.NewWithColumns(columns, rows), nil
}
