// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/common"
	"fjacquet/statement-csv/internal/config"
	"fjacquet/statement-csv/internal/extractor"
	"fjacquet/statement-csv/internal/fileutils"
	"fjacquet/statement-csv/internal/parsers"
	"fjacquet/statement-csv/internal/processor"
	"fjacquet/statement-csv/internal/report"
	"fjacquet/statement-csv/internal/validate"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "A CLI tool to convert bank statement PDFs to CSV and Excel.",
		Long: `statement-csv extracts transactions from bank statement PDFs,
detects the issuing bank and converts the movements to CSV or Excel format.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Invalid configuration, using defaults")
			} else {
				Cfg = cfg
				Log = config.ConfigureLoggingFromConfig(cfg)
			}

			// Propagate the configured logger to every package
			amountutils.SetLogger(Log)
			common.SetLogger(Log)
			extractor.SetLogger(Log)
			fileutils.SetLogger(Log)
			parsers.SetLogger(Log)
			processor.SetLogger(Log)
			report.SetLogger(Log)
			validate.SetLogger(Log)

			if Cfg != nil && Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// NewProcessor builds a processor from the loaded configuration.
func NewProcessor() *processor.Processor {
	return processor.New(Cfg, nil)
}

// ReportOptions derives the workbook options from the loaded configuration.
func ReportOptions() report.Options {
	opts := report.DefaultOptions()
	if Cfg != nil {
		opts.SheetPrefix = Cfg.Report.SheetPrefix
		opts.IncludeAnalysis = Cfg.Report.IncludeAnalysis
		opts.IncludeMonthly = Cfg.Report.IncludeMonthly
		opts.CategoryFallback = Cfg.Report.CategoryFallback
	}
	return opts
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
