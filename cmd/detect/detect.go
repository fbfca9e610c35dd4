// Package detect identifies the issuing bank of a statement
package detect

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/statement-csv/cmd/root"
)

// Preview is the number of extracted text lines to print for inspection
var Preview int

// Parse controls whether the statement is also parsed to count transactions
var Parse bool

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect which bank issued a statement PDF",
	Long: `Detect which bank issued a statement PDF without converting it.

Prints the bank identifier used by the conversion pipeline, or "unknown"
when the statement cannot be classified. Use --preview to inspect the
extracted text and --parse to also count the transactions the pipeline
would produce.

Example:
  statement-csv detect -i statement.pdf --preview 20`,
	Run: detectFunc,
}

func init() {
	Cmd.Flags().IntVar(&Preview, "preview", 0, "Print the first N lines of extracted text")
	Cmd.Flags().BoolVar(&Parse, "parse", false, "Also parse the statement and report the transaction count")
}

func detectFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("--input is required")
	}

	proc := root.NewProcessor()
	bankID, err := proc.DetectBank(input)
	if err != nil {
		root.Log.Fatalf("Detection failed: %v", err)
	}

	root.Log.WithField("bank", bankID).Info("Detected bank")
	fmt.Println(bankID)

	if Preview > 0 {
		text, err := proc.ExtractText(input)
		if err != nil {
			root.Log.Fatalf("Extraction failed: %v", err)
		}
		lines := strings.Split(text, "\n")
		if len(lines) > Preview {
			lines = lines[:Preview]
		}
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	if Parse {
		result := proc.ProcessFile(input)
		if !result.Success {
			root.Log.Fatalf("Parse failed: %s", result.Error)
		}
		root.Log.WithField("count", len(result.Transactions)).Info("Parsed statement")
	}
}
