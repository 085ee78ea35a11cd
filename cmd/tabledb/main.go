package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabledb/tabledb/internal/types"
)

var (
	flagVerbose   bool
	flagTableName string
)

var rootCmd = &cobra.Command{
	Use:   "tabledb",
	Short: "Convert, query and export tabular row sets",
	Long: `tabledb loads CSV row sets into an ordered tabular data model and
lets you normalize column types (decimal, int, date, currency,
accounting), run SQL against the data through an embedded engine, and
export the result as CSV, JSON, SQL or Parquet.

Examples:
  tabledb query data.csv "SELECT name, total FROM data WHERE qty > 2"
  tabledb convert data.csv --currency total --date when --date-from 01/02/2006 --date-to 2006-01-02
  tabledb export data.csv --format parquet --out ./data
  tabledb interactive data.csv`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			types.GlobalLogger.SetLevel(types.LogLevelDebug)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagTableName, "table", "t", "data", "table name used when materializing SQL")
}
