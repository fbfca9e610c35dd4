package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/statement-csv/internal/models"
)

func sampleTransactions() []models.Transaction {
	credit := models.Transaction{
		Date:        "2025-05-05",
		Description: "Transferencia recibida",
		Amount:      decimal.RequireFromString("1000"),
		Account:     "22537/8",
		Bank:        "Banco Roela (Arg.)",
		Currency:    "ARS",
		Type:        models.TypeCredit,
	}
	debit := models.Transaction{
		Date:        "2025-05-06",
		Description: "Compra en tienda",
		Amount:      decimal.RequireFromString("-500.5"),
		Account:     "22537/8",
		Bank:        "Banco Roela (Arg.)",
		Currency:    "ARS",
		Type:        models.TypeDebit,
	}
	debit.SetBalance(decimal.RequireFromString("499.5"))
	return []models.Transaction{credit, debit}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "transactions.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Date,Description,Amount,Balance,Account,Bank,Currency,Type")
	// Amounts are normalized to cents before writing.
	assert.Contains(t, content, "2025-05-05,Transferencia recibida,1000.00,,22537/8")
	assert.Contains(t, content, "2025-05-06,Compra en tienda,-500.50,499.50,22537/8")
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	out := filepath.Join(t.TempDir(), "transactions.csv")

	err := WriteTransactionsToCSV(nil, out)
	assert.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestWriteTransactionsToCSVCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "transactions.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestWriteTransactionsToCSVEmptySlice(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.csv")

	err := WriteTransactionsToCSV([]models.Transaction{}, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date,Description")
}

func TestCSVRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roundtrip.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), out))

	rows, readErr := ReadCSVFile[models.Transaction](out)
	require.NoError(t, readErr)
	require.Len(t, rows, 2)

	assert.Equal(t, "Transferencia recibida", rows[0].Description)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("1000")))
	assert.False(t, rows[0].Balance.Valid)

	assert.Equal(t, "Compra en tienda", rows[1].Description)
	assert.True(t, rows[1].Amount.Equal(decimal.RequireFromString("-500.5")))
	assert.True(t, rows[1].Balance.Valid)
	assert.True(t, rows[1].Balance.Decimal.Equal(decimal.RequireFromString("499.5")))
}

func TestSetDelimiter(t *testing.T) {
	t.Cleanup(func() { SetDelimiter(',') })
	SetDelimiter(';')

	out := filepath.Join(t.TempDir(), "semicolon.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), out))

	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Date;Description;Amount;Balance")

	rows, parseErr := ReadCSVFile[models.Transaction](out)
	require.NoError(t, parseErr)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-05-05", rows[0].Date)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, readErr := ReadCSVFile[models.Transaction](filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, readErr)
}
