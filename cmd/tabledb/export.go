package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabledb/tabledb/internal/storage"
)

var (
	flagExportFormat  string
	flagExportOut     string
	flagExportDialect string
)

var exportCmd = &cobra.Command{
	Use:   "export [file|-]",
	Short: "Export a CSV row set as csv, json, sql or parquet",
	Long: `Load a CSV file (or stdin with "-") and write it back out in another
format. csv and sql go to stdout unless --out names a file; json
requires --out; parquet writes <table>.parquet under the --out
directory.

Examples:
  tabledb export data.csv --format sql --dialect mysql
  tabledb export data.csv --format json --out data.json
  tabledb export data.csv --format parquet --out ./data`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadCSV(args[0])
		if err != nil {
			return err
		}

		switch flagExportFormat {
		case "csv":
			if flagExportOut == "" {
				return storage.ToCSV(t, os.Stdout)
			}
			f, err := os.Create(flagExportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			return storage.ToCSV(t, f)
		case "json":
			if flagExportOut == "" {
				return fmt.Errorf("json export requires --out")
			}
			return storage.SaveJSON(t, flagExportOut)
		case "sql":
			script, err := storage.ToSQL(t, flagTableName, storage.Dialect(flagExportDialect))
			if err != nil {
				return err
			}
			if flagExportOut == "" {
				fmt.Print(script)
				return nil
			}
			return os.WriteFile(flagExportOut, []byte(script), 0644)
		case "parquet":
			dir := flagExportOut
			if dir == "" {
				dir = "."
			}
			return storage.ToParquet(t, dir, flagTableName)
		default:
			return fmt.Errorf("unknown export format %q", flagExportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "output format: csv, json, sql or parquet")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output file (or directory for parquet)")
	exportCmd.Flags().StringVarP(&flagExportDialect, "dialect", "d", "sqlite", "SQL dialect for --format sql: sqlite, mysql or duckdb")
	rootCmd.AddCommand(exportCmd)
}
