package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/tabledb/tabledb/internal/table"
	"github.com/tabledb/tabledb/internal/types"
)

// parquetRecord is one table row in Parquet form. Cells are carried as
// a JSON array of column/value pairs so that column order survives the
// round trip regardless of the table's schema.
type parquetRecord struct {
	TableName string `parquet:"name=table_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	RowJSON   string `parquet:"name=row_json, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// parquetCell mirrors table.Cell for the row payload.
type parquetCell struct {
	Column string `json:"c"`
	Value  string `json:"v"`
}

// ToParquet writes the table to a Parquet file under dataDir named
// after tableName, with SNAPPY compression.
func ToParquet(t *table.Table, dataDir, tableName string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, fmt.Sprintf("%s.parquet", tableName))
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return err
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(parquetRecord), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	columns := t.ColumnNames()
	for i := 0; i < t.RowCount(); i++ {
		row, err := t.RowAt(i)
		if err != nil {
			return err
		}
		cells := make([]parquetCell, len(columns))
		for j, col := range columns {
			v, _ := row.Get(col)
			cells[j] = parquetCell{Column: col, Value: v}
		}
		payload, err := json.Marshal(cells)
		if err != nil {
			return err
		}
		if err := pw.Write(&parquetRecord{TableName: tableName, RowJSON: string(payload)}); err != nil {
			return err
		}
	}

	if err := pw.WriteStop(); err != nil {
		return err
	}

	types.GlobalLogger.Debug("wrote %d rows to %s", t.RowCount(), filePath)
	return nil
}

// FromParquet reads a Parquet file written by ToParquet back into a
// table. Records tagged with a different table name are skipped.
func FromParquet(dataDir, tableName string) (*table.Table, error) {
	filePath := filepath.Join(dataDir, fmt.Sprintf("%s.parquet", tableName))
	fr, err := local.NewLocalFileReader(filePath)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(parquetRecord), 4)
	if err != nil {
		return nil, err
	}
	defer pr.ReadStop()

	numRows := int(pr.GetNumRows())
	records := make([]parquetRecord, numRows)
	if err := pr.Read(&records); err != nil {
		return nil, err
	}

	var rows []table.Row
	for _, rec := range records {
		if rec.TableName != tableName {
			continue
		}
		var cells []parquetCell
		if err := json.Unmarshal([]byte(rec.RowJSON), &cells); err != nil {
			return nil, fmt.Errorf("bad row payload in %s: %w", filePath, err)
		}
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = table.Cell{Column: c.Column, Value: c.Value}
		}
		rows = append(rows, row)
	}

	return table.New(rows), nil
}
