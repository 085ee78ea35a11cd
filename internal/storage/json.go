package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tabledb/tabledb/internal/table"
)

// Snapshot format. Column order matters, so rows are stored as value
// arrays aligned with the columns array instead of JSON objects, whose
// key order would not round-trip.
type jsonSnapshot struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SaveJSON writes the table to filePath as an order-preserving JSON
// snapshot, creating parent directories as needed.
func SaveJSON(t *table.Table, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snap := jsonSnapshot{
		Columns: t.ColumnNames(),
		Rows:    make([][]string, 0, t.RowCount()),
	}
	for i := 0; i < t.RowCount(); i++ {
		row, err := t.RowAt(i)
		if err != nil {
			return err
		}
		values := make([]string, len(snap.Columns))
		for j, col := range snap.Columns {
			values[j], _ = row.Get(col)
		}
		snap.Rows = append(snap.Rows, values)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// LoadJSON reads a snapshot written by SaveJSON back into a table.
func LoadJSON(filePath string) (*table.Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var snap jsonSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", filePath, err)
	}

	rows := make([]table.Row, len(snap.Rows))
	for i, values := range snap.Rows {
		if len(values) != len(snap.Columns) {
			return nil, fmt.Errorf("snapshot row %d has %d values, want %d", i, len(values), len(snap.Columns))
		}
		row := make(table.Row, len(snap.Columns))
		for j, col := range snap.Columns {
			row[j] = table.Cell{Column: col, Value: values[j]}
		}
		rows[i] = row
	}

	return table.NewWithColumns(snap.Columns, rows), nil
}
