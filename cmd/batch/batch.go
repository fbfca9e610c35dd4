// Package batch handles batch processing of statement files
package batch

import (
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fjacquet/statement-csv/cmd/root"
	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/common"
	"fjacquet/statement-csv/internal/fileutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/report"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement PDFs from a directory",
	Long: `Batch process all statement PDFs in an input directory.

Every PDF is converted independently; failures are reported per file and do
not stop the batch. Each statement gets its own CSV, and the combined
transactions are written to transactions.csv plus an Excel report in the
output directory.

Example:
  statement-csv batch -i statements/ -o out/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Both --input and --output directories are required")
	}
	if !fileutils.DirectoryExists(inputDir) {
		root.Log.Fatalf("Input directory does not exist: %s", inputDir)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		root.Log.Fatalf("Error listing input directory: %v", err)
	}
	if len(files) == 0 {
		root.Log.Warn("No PDF files found in input directory")
		return
	}

	proc := root.NewProcessor()
	if errs := proc.CheckFiles(files); len(errs) > 0 {
		for _, msg := range errs {
			root.Log.Error(msg)
		}
		root.Log.Fatal("Batch rejected")
	}

	summary, results := proc.ProcessFiles(files)

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}

	var all []models.Transaction
	for _, r := range results {
		if !r.Success {
			root.Log.WithField("file", r.File).Errorf("Failed: %s", r.Error)
			continue
		}
		all = append(all, r.Transactions...)

		base := strings.TrimSuffix(filepath.Base(r.File), filepath.Ext(r.File))
		perFile := filepath.Join(outputDir, base+".csv")
		if err := common.WriteTransactionsToCSV(r.Transactions, perFile); err != nil {
			root.Log.WithField("file", r.File).Errorf("Error writing CSV: %v", err)
		}
	}

	csvPath := filepath.Join(outputDir, "transactions.csv")
	if err := common.WriteTransactionsToCSV(all, csvPath); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}

	xlsxPath := filepath.Join(outputDir, "transactions.xlsx")
	gen := report.NewGenerator(root.ReportOptions())
	if err := gen.WriteWorkbook(xlsxPath, all, summary); err != nil {
		root.Log.Fatalf("Error writing Excel report: %v", err)
	}

	root.Log.Infof("Batch processing completed: %d/%d files succeeded, %d transactions",
		summary.SuccessfulFiles, summary.TotalFiles, summary.TotalTransactions)
	if len(all) > 0 {
		net := decimal.Zero
		for _, tx := range all {
			net = net.Add(tx.Amount)
		}
		root.Log.WithField("net", amountutils.Format(net, all[0].Currency)).
			Info("Combined net amount")
	}
	for _, name := range summary.BankNames() {
		root.Log.WithField("bank", name).Info("Bank detected in batch")
	}
}
