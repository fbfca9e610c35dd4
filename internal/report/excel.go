// Package report renders processing results into an Excel workbook.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options controls which sheets the workbook contains. CategoryFallback,
// when set, replaces the default label for uncategorized transactions.
type Options struct {
	SheetPrefix      string
	IncludeAnalysis  bool
	IncludeMonthly   bool
	CategoryFallback string
}

// DefaultOptions enables every sheet.
func DefaultOptions() Options {
	return Options{IncludeAnalysis: true, IncludeMonthly: true}
}

// Generator builds the result workbook.
type Generator struct {
	opts Options
}

// NewGenerator returns a Generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

func (g *Generator) sheet(name string) string {
	return g.opts.SheetPrefix + name
}

func (g *Generator) category(description string) string {
	c := Category(description)
	if c == DefaultCategory && g.opts.CategoryFallback != "" {
		return g.opts.CategoryFallback
	}
	return c
}

// WriteWorkbook writes the workbook for one processing run to path.
func (g *Generator) WriteWorkbook(path string, txs []models.Transaction, summary *models.ProcessingSummary) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", g.sheet("Summary")); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := g.writeSummarySheet(f, txs, summary); err != nil {
		return err
	}
	if err := g.writeTransactionsSheet(f, txs); err != nil {
		return err
	}
	if g.opts.IncludeAnalysis {
		if err := g.writeAnalysisSheet(f, txs); err != nil {
			return err
		}
	}
	if g.opts.IncludeMonthly {
		if err := g.writeMonthlySheet(f, txs); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(txs),
	}).Info("Wrote Excel report")
	return nil
}

func (g *Generator) writeSummarySheet(f *excelize.File, txs []models.Transaction, summary *models.ProcessingSummary) error {
	sheet := g.sheet("Summary")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headingStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return err
	}

	setCell := func(cell string, value interface{}) {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			log.WithError(err).WithField("cell", cell).Warn("Failed to set cell")
		}
	}

	setCell("A1", "Bank Statement Processing Summary")
	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	setCell("A3", "Processing Date:")
	setCell("B3", time.Now().Format("2006-01-02 15:04:05"))
	if summary != nil {
		setCell("A4", "Run ID:")
		setCell("B4", summary.RunID)
	}

	setCell("A5", "File Statistics")
	if err := f.SetCellStyle(sheet, "A5", "A5", headingStyle); err != nil {
		return err
	}
	if summary != nil {
		setCell("A6", "Total Files Uploaded:")
		setCell("B6", summary.TotalFiles)
		setCell("A7", "Successfully Processed:")
		setCell("B7", summary.SuccessfulFiles)
		setCell("A8", "Failed Files:")
		setCell("B8", summary.FailedFiles)
	}

	setCell("A10", "Transaction Statistics")
	if err := f.SetCellStyle(sheet, "A10", "A10", headingStyle); err != nil {
		return err
	}
	setCell("A11", "Total Transactions:")
	setCell("B11", len(txs))
	if summary != nil {
		banks := summary.BankNames()
		setCell("A12", "Banks Detected:")
		setCell("B12", len(banks))
		setCell("A13", "Bank Names:")
		setCell("B13", strings.Join(banks, ", "))
	}

	credits, debits := totals(txs)
	setCell("A15", "Financial Summary")
	if err := f.SetCellStyle(sheet, "A15", "A15", headingStyle); err != nil {
		return err
	}
	setCell("A16", "Total Credits:")
	setCell("B16", credits.InexactFloat64())
	setCell("A17", "Total Debits:")
	setCell("B17", debits.InexactFloat64())
	setCell("A18", "Net Amount:")
	setCell("B18", credits.Sub(debits).InexactFloat64())

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B16", "B18", moneyStyle); err != nil {
		return err
	}

	if summary != nil && len(summary.Errors) > 0 {
		errStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 12, Color: "FF0000"},
		})
		if err != nil {
			return err
		}
		setCell("A20", "Processing Errors")
		if err := f.SetCellStyle(sheet, "A20", "A20", errStyle); err != nil {
			return err
		}
		for i, msg := range summary.Errors {
			setCell(fmt.Sprintf("A%d", 21+i), msg)
		}
	}

	return f.SetColWidth(sheet, "A", "B", 30)
}

var transactionHeaders = []string{
	"Date", "Description", "Amount", "Balance", "Type", "Bank", "Account", "Currency", "Category",
}

func (g *Generator) writeTransactionsSheet(f *excelize.File, txs []models.Transaction) error {
	sheet := g.sheet("All Transactions")
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if len(txs) == 0 {
		return f.SetCellValue(sheet, "A1", "No transactions found")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &transactionHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", headerStyle); err != nil {
		return err
	}

	for i, tx := range txs {
		row := i + 2
		values := []interface{}{
			tx.Date,
			tx.Description,
			tx.Amount.InexactFloat64(),
			nil,
			tx.Type,
			tx.Bank,
			tx.Account,
			tx.Currency,
			g.category(tx.Description),
		}
		if tx.Balance.Valid {
			values[3] = tx.Balance.Decimal.InexactFloat64()
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	last := len(txs) + 1
	if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("D%d", last), moneyStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "I", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 45); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (g *Generator) writeAnalysisSheet(f *excelize.File, txs []models.Transaction) error {
	sheet := g.sheet("Analysis")
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if len(txs) == 0 {
		return f.SetCellValue(sheet, "A1", "No data available for analysis")
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Transaction Analysis"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A3", "Transaction Type Summary"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "A3", boldStyle); err != nil {
		return err
	}
	row := 4
	for _, kv := range countBy(txs, func(tx models.Transaction) string { return tx.Type }) {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kv.key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kv.count); err != nil {
			return err
		}
		row++
	}

	if err := f.SetCellValue(sheet, "D3", "Transactions by Bank"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "D3", "D3", boldStyle); err != nil {
		return err
	}
	row = 4
	for _, kv := range countBy(txs, func(tx models.Transaction) string { return tx.Bank }) {
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), kv.key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", row), kv.count); err != nil {
			return err
		}
		row++
	}

	if err := f.SetCellValue(sheet, "G3", "Spending by Category"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "G3", "G3", boldStyle); err != nil {
		return err
	}
	row = 4
	for _, kv := range countBy(txs, func(tx models.Transaction) string { return g.category(tx.Description) }) {
		if err := f.SetCellValue(sheet, fmt.Sprintf("G%d", row), kv.key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("H%d", row), kv.count); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (g *Generator) writeMonthlySheet(f *excelize.File, txs []models.Transaction) error {
	sheet := g.sheet("Monthly Summary")
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if len(txs) == 0 {
		return f.SetCellValue(sheet, "A1", "No data available for monthly summary")
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Monthly Financial Summary"); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "F1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	headers := []string{"Month", "Total Credits", "Total Debits", "Net Amount", "Transaction Count", "Average Transaction"}
	if err := f.SetSheetRow(sheet, "A3", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "F3", headerStyle); err != nil {
		return err
	}

	months := MonthlyBreakdown(txs)
	for i, m := range months {
		row := i + 4
		values := []interface{}{
			m.Month,
			m.Credits.InexactFloat64(),
			m.Debits.InexactFloat64(),
			m.Net.InexactFloat64(),
			m.Count,
			m.Average.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	if len(months) > 0 {
		last := len(months) + 3
		if err := f.SetCellStyle(sheet, "B4", fmt.Sprintf("D%d", last), moneyStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "F4", fmt.Sprintf("F%d", last), moneyStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "F", 20)
}

// MonthSummary aggregates the movements of one calendar month.
type MonthSummary struct {
	Month   string
	Credits decimal.Decimal
	Debits  decimal.Decimal
	Net     decimal.Decimal
	Count   int
	Average decimal.Decimal
}

// MonthlyBreakdown groups transactions by calendar month, sorted ascending.
// Transactions without a parseable month are skipped.
func MonthlyBreakdown(txs []models.Transaction) []MonthSummary {
	byMonth := make(map[string]*MonthSummary)
	for _, tx := range txs {
		if !dateutils.IsValid(tx.Date) {
			continue
		}
		month := dateutils.MonthKey(tx.Date)
		if month == "" {
			continue
		}
		m, ok := byMonth[month]
		if !ok {
			m = &MonthSummary{Month: month}
			byMonth[month] = m
		}
		if tx.Amount.IsPositive() {
			m.Credits = m.Credits.Add(tx.Amount)
		} else if tx.Amount.IsNegative() {
			m.Debits = m.Debits.Add(tx.Amount.Abs())
		}
		m.Net = m.Credits.Sub(m.Debits)
		m.Count++
	}

	months := make([]MonthSummary, 0, len(byMonth))
	for _, m := range byMonth {
		if m.Count > 0 {
			total := m.Credits.Sub(m.Debits)
			m.Average = total.Div(decimal.NewFromInt(int64(m.Count))).Round(2)
		}
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

func totals(txs []models.Transaction) (credits, debits decimal.Decimal) {
	for _, tx := range txs {
		if tx.Amount.IsPositive() {
			credits = credits.Add(tx.Amount)
		} else if tx.Amount.IsNegative() {
			debits = debits.Add(tx.Amount.Abs())
		}
	}
	return credits, debits
}

type keyCount struct {
	key   string
	count int
}

func countBy(txs []models.Transaction, keyFn func(models.Transaction) string) []keyCount {
	counts := make(map[string]int)
	for _, tx := range txs {
		counts[keyFn(tx)]++
	}
	out := make([]keyCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}
