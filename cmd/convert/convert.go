// Package convert handles single statement conversion
package convert

import (
	"github.com/spf13/cobra"

	"fjacquet/statement-csv/cmd/root"
	"fjacquet/statement-csv/internal/common"
	"fjacquet/statement-csv/internal/fileutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/report"
)

// Excel is the optional Excel report output path
var Excel string

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a statement PDF to CSV",
	Long: `Convert a single bank statement PDF to CSV format.

The bank is detected automatically from the statement text. Use --excel to
additionally write an Excel report next to the CSV.

Example:
  statement-csv convert -i statement.pdf -o transactions.csv`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Excel, "excel", "x", "", "Also write an Excel report to this path")
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("Input file does not exist: %s", input)
	}

	proc := root.NewProcessor()
	if errs := proc.CheckFiles([]string{input}); len(errs) > 0 {
		for _, msg := range errs {
			root.Log.Error(msg)
		}
		root.Log.Fatal("Input file rejected")
	}

	result := proc.ProcessFile(input)
	if !result.Success {
		root.Log.Fatalf("Conversion failed: %s", result.Error)
	}
	if len(result.Transactions) == 0 {
		root.Log.Warn("No transactions found in statement")
	}

	if err := common.WriteTransactionsToCSV(result.Transactions, output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}

	if Excel != "" {
		summary := models.NewProcessingSummary(1)
		summary.Add(result)
		gen := report.NewGenerator(root.ReportOptions())
		if err := gen.WriteWorkbook(Excel, result.Transactions, summary); err != nil {
			root.Log.Fatalf("Error writing Excel report: %v", err)
		}
	}

	root.Log.WithField("count", len(result.Transactions)).
		Info("PDF to CSV conversion completed successfully!")
}
