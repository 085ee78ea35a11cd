package main

import (
	"os"

	"github.com/tabledb/tabledb/internal/storage"
	"github.com/tabledb/tabledb/internal/table"
)

// loadCSV reads a table from a CSV file, or from stdin when the
// filename is "-".
func loadCSV(filename string) (*table.Table, error) {
	if filename == "-" {
		return storage.FromCSV(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return storage.FromCSV(f)
}
