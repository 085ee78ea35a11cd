package main

import (
	"github.com/spf13/cobra"

	"github.com/tabledb/tabledb/internal/bridge"
	"github.com/tabledb/tabledb/internal/storage"
)

var queryCmd = &cobra.Command{
	Use:   "query [file|-] [SQL]",
	Short: "Run a SQL query against a CSV row set",
	Long: `Load a CSV file (or stdin with "-") and run a SQL query against it
through the embedded engine. The data is materialized under the name
given by --table.

Examples:
  tabledb query data.csv "SELECT * FROM data"
  cat data.csv | tabledb query - "SELECT name FROM data WHERE qty > 2"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadCSV(args[0])
		if err != nil {
			return err
		}

		result, err := bridge.Query(nil, t, flagTableName, args[1], storage.DialectDuckDB)
		if err != nil {
			return err
		}

		printTable(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
