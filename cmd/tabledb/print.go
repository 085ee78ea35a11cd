package main

import (
	"fmt"

	"github.com/tabledb/tabledb/internal/table"
)

// printTable formats a table for the terminal, columns in schema order.
func printTable(t *table.Table) {
	if t.RowCount() == 0 {
		fmt.Println("Empty result set")
		return
	}

	columns := t.ColumnNames()
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}

	// Column widths from the data
	for i := 0; i < t.RowCount(); i++ {
		row, _ := t.RowAt(i)
		for j, col := range columns {
			v, _ := row.Get(col)
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
	}

	// Header
	for i, col := range columns {
		if i > 0 {
			fmt.Print(" | ")
		}
		fmt.Printf("%-*s", widths[i], col)
	}
	fmt.Println()

	// Separator
	for i := range columns {
		if i > 0 {
			fmt.Print("-+-")
		}
		for j := 0; j < widths[i]; j++ {
			fmt.Print("-")
		}
	}
	fmt.Println()

	// Data rows
	for i := 0; i < t.RowCount(); i++ {
		row, _ := t.RowAt(i)
		for j, col := range columns {
			if j > 0 {
				fmt.Print(" | ")
			}
			v, ok := row.Get(col)
			if !ok {
				v = "NULL"
			}
			fmt.Printf("%-*s", widths[j], v)
		}
		fmt.Println()
	}
}
