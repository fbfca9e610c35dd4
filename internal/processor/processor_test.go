package processor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/statement-csv/internal/extractor"
)

func TestProcessFileSuccess(t *testing.T) {
	text := "Banco Galicia\n" +
		"05/05/25 COMPRA EN TIENDA -1.000,00 5.000,00"
	p := New(nil, &extractor.MockExtractor{Text: text})

	result := p.ProcessFile("statement.pdf")
	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "galicia", result.BankID)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	assert.Equal(t, "2025-05-05", tx.Date)
	assert.True(t, decimal.NewFromInt(-1000).Equal(tx.Amount))
	assert.Equal(t, "ARS", tx.Currency)
	assert.Equal(t, "Banco Galicia", tx.Bank)
}

func TestProcessFileExtractionFailure(t *testing.T) {
	p := New(nil, &extractor.MockExtractor{Err: errors.New("broken pdf")})

	result := p.ProcessFile("statement.pdf")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "text extraction failed")
	assert.Empty(t, result.Transactions)
}

func TestProcessFileEmptyExtraction(t *testing.T) {
	// An intact PDF with no extractable text is an extraction failure, not
	// an unknown bank.
	p := New(nil, &extractor.MockExtractor{Text: "   \n  "})

	result := p.ProcessFile("statement.pdf")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "text extraction failed")
	assert.Contains(t, result.Error, "no extractable text")
	assert.Empty(t, result.BankID)
	assert.Empty(t, result.Transactions)
}

func TestProcessFileUnknownBank(t *testing.T) {
	p := New(nil, &extractor.MockExtractor{Text: "lorem ipsum dolor sit amet"})

	result := p.ProcessFile("statement.pdf")
	assert.False(t, result.Success)
	assert.Equal(t, "unknown", result.BankID)
	assert.Contains(t, result.Error, "no parser")
}

func TestProcessFilesAggregation(t *testing.T) {
	text := "Banco Galicia\n05/05/25 COMPRA EN TIENDA -1.000,00 5.000,00"
	p := New(nil, &extractor.MockExtractor{Text: text})

	summary, results := p.ProcessFiles([]string{"a.pdf", "b.pdf"})
	require.Len(t, results, 2)
	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 2, summary.SuccessfulFiles)
	assert.Equal(t, 0, summary.FailedFiles)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, []string{"Banco Galicia"}, summary.BankNames())
}

func TestDetectBank(t *testing.T) {
	p := New(nil, &extractor.MockExtractor{Text: "JPMorgan Chase Bank"})
	bankID, err := p.DetectBank("statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, "chase", bankID)
}

func TestCheckFilesLimits(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "ok.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0600))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0600))

	p := New(nil, &extractor.MockExtractor{})

	assert.Empty(t, p.CheckFiles([]string{pdf}))

	errs := p.CheckFiles([]string{txt})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "only PDF files are allowed")

	// Eleven files exceed the default limit of ten.
	var many []string
	for i := 0; i < 11; i++ {
		many = append(many, pdf)
	}
	errs = p.CheckFiles(many)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "too many files")

	errs = p.CheckFiles([]string{filepath.Join(dir, "missing.pdf")})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "cannot read")
}

func TestCheckFilesCaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "UPPER.PDF")
	require.NoError(t, os.WriteFile(pdf, []byte(strings.Repeat("x", 16)), 0600))

	p := New(nil, &extractor.MockExtractor{})
	assert.Empty(t, p.CheckFiles([]string{pdf}))
}
