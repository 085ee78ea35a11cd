package storage

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tabledb/tabledb/internal/table"
)

// FromCSV reads a CSV stream into a table. The first record is the
// header and becomes the column-name sequence; every following record
// becomes one row. Ragged records are rejected by the csv reader.
func FromCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return table.New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []table.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		row := make(table.Row, len(header))
		for i, col := range header {
			row[i] = table.Cell{Column: col, Value: record[i]}
		}
		rows = append(rows, row)
	}

	return table.NewWithColumns(header, rows), nil
}

// ToCSV writes the table as CSV: header record in schema order, then
// one record per row. Cells a row does not carry are written empty.
func ToCSV(t *table.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	columns := t.ColumnNames()

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i < t.RowCount(); i++ {
		row, err := t.RowAt(i)
		if err != nil {
			return err
		}
		record := make([]string, len(columns))
		for j, col := range columns {
			record[j], _ = row.Get(col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
