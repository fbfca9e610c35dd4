// Package parsers contains the bank statement parser hierarchy: a shared
// generic-pattern engine, regional and bank-specific parsers built on top of
// it by composition, and the registry mapping bank identifiers to parser
// instances.
package parsers

import (
	"github.com/sirupsen/logrus"

	"fjacquet/statement-csv/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Input carries everything a parser may use. Text is the line-preserving
// cleaned extraction of the whole document. FilePath points at the original
// PDF when available; parsers that work on page geometry reopen it, all
// others ignore it.
type Input struct {
	Text     string
	FilePath string
}

// Parser converts extracted statement text into transactions. A parser that
// finds nothing returns an empty slice, not an error; malformed lines are
// skipped individually and never abort the document.
type Parser interface {
	// BankID is the unique identifier this parser registers under.
	BankID() string
	// Aliases are additional identifiers resolving to this parser.
	Aliases() []string
	// BankName is the display name stamped on produced transactions.
	BankName() string
	// Parse extracts transactions from the input.
	Parse(in Input) ([]models.Transaction, error)
}

// finalizeTx stamps the document-level fields and derived type on a parsed
// transaction. Every parser funnels its rows through this.
func finalizeTx(tx *models.Transaction, info models.AccountInfo, bankName string) {
	tx.Account = info.Number
	tx.Currency = info.Currency
	tx.Bank = bankName
	tx.Type = models.DeriveType(tx.Amount)
}
