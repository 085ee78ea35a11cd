package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/tabledb/tabledb/internal/bridge"
	"github.com/tabledb/tabledb/internal/storage"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive [file]",
	Short: "Run SQL queries against a CSV row set in a REPL",
	Long: `Load a CSV file and open a SQL prompt against it. The data is
materialized under the name given by --table. Type 'exit' or 'quit'
to leave.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadCSV(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d rows from %s as table %q\n", t.RowCount(), args[0], flagTableName)
		fmt.Println("Type 'exit' or 'quit' to leave.")

		db, err := bridge.Open()
		if err != nil {
			return err
		}
		defer db.Close()

		rl, err := readline.New(fmt.Sprintf("%s> ", flagTableName))
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			result, err := bridge.Query(db, t, flagTableName, line, storage.DialectDuckDB)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			printTable(result)
		}

		fmt.Println("Goodbye!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
