package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tabledb/tabledb/internal/storage"
	"github.com/tabledb/tabledb/internal/table"
)

var (
	flagDecimalCols    []string
	flagIntCols        []string
	flagDateCols       []string
	flagCurrencyCols   []string
	flagAccountingCols []string
	flagDateFrom       []string
	flagDateTo         string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Normalize column types in a CSV row set",
	Long: `Load a CSV file (or stdin with "-"), normalize the named columns and
write the result as CSV to stdout. Date columns are parsed with the
--date-from layouts (Go reference time layouts, tried in order) and
rendered with --date-to.

Examples:
  tabledb convert data.csv --decimal amount --int qty
  tabledb convert data.csv --date when --date-from 01/02/2006 --date-from 2006-01-02 --date-to 2006-01-02
  tabledb convert data.csv --currency total --accounting balance`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadCSV(args[0])
		if err != nil {
			return err
		}

		var convs []table.Conversion
		for _, col := range flagDecimalCols {
			convs = append(convs, table.Conversion{Column: col, Type: table.TypeDecimal})
		}
		for _, col := range flagIntCols {
			convs = append(convs, table.Conversion{Column: col, Type: table.TypeInt})
		}
		for _, col := range flagDateCols {
			convs = append(convs, table.Conversion{Column: col, Type: table.TypeDate})
		}
		for _, col := range flagCurrencyCols {
			convs = append(convs, table.Conversion{Column: col, Type: table.TypeCurrency})
		}
		for _, col := range flagAccountingCols {
			convs = append(convs, table.Conversion{Column: col, Type: table.TypeAccounting})
		}

		if err := t.ConvertTypes(convs, flagDateFrom, flagDateTo); err != nil {
			return err
		}

		return storage.ToCSV(t, os.Stdout)
	},
}

func init() {
	convertCmd.Flags().StringSliceVar(&flagDecimalCols, "decimal", nil, "columns to normalize as decimals")
	convertCmd.Flags().StringSliceVar(&flagIntCols, "int", nil, "columns to normalize as integers")
	convertCmd.Flags().StringSliceVar(&flagDateCols, "date", nil, "columns to normalize as dates")
	convertCmd.Flags().StringSliceVar(&flagCurrencyCols, "currency", nil, "columns to format as currency")
	convertCmd.Flags().StringSliceVar(&flagAccountingCols, "accounting", nil, "columns to format as accounting amounts")
	convertCmd.Flags().StringSliceVar(&flagDateFrom, "date-from", []string{"2006-01-02"}, "candidate input date layouts, tried in order")
	convertCmd.Flags().StringVar(&flagDateTo, "date-to", "2006-01-02", "output date layout")
	rootCmd.AddCommand(convertCmd)
}
