// Package models provides the data structures used throughout the application.
package models

import "github.com/shopspring/decimal"

// Transaction type values derived from the sign of the amount.
const (
	TypeCredit  = "Credit"
	TypeDebit   = "Debit"
	TypeNeutral = "Neutral"
)

// Transaction represents one normalized financial movement extracted from a
// bank statement. Amounts are signed: positive means credit, negative debit.
type Transaction struct {
	Date        string              `csv:"Date"`        // ISO date (YYYY-MM-DD)
	Description string              `csv:"Description"` // Cleaned transaction text
	Amount      decimal.Decimal     `csv:"Amount"`      // Signed amount
	Balance     decimal.NullDecimal `csv:"Balance"`     // Balance after the movement, if the statement shows one
	Account     string              `csv:"Account"`     // Account number as found in the document
	Bank        string              `csv:"Bank"`        // Bank display name
	Currency    string              `csv:"Currency"`    // EUR, USD, GBP or ARS
	Type        string              `csv:"Type"`        // Credit, Debit or Neutral
}

// DeriveType returns the transaction type implied by the sign of an amount.
func DeriveType(amount decimal.Decimal) string {
	switch {
	case amount.IsPositive():
		return TypeCredit
	case amount.IsNegative():
		return TypeDebit
	default:
		return TypeNeutral
	}
}

// IsCredit returns true if the transaction brings money in.
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsDebit returns true if the transaction takes money out.
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// SetBalance stores a balance value and marks it present.
func (t *Transaction) SetBalance(b decimal.Decimal) {
	t.Balance = decimal.NullDecimal{Decimal: b, Valid: true}
}

// BalanceString renders the balance column, empty when the statement had none.
func (t *Transaction) BalanceString() string {
	if !t.Balance.Valid {
		return ""
	}
	return t.Balance.Decimal.StringFixed(2)
}

// Normalize rounds the amounts to two decimal places so that CSV and report
// output always shows cents.
func (t *Transaction) Normalize() {
	t.Amount = t.Amount.Round(2)
	if t.Balance.Valid {
		t.Balance.Decimal = t.Balance.Decimal.Round(2)
	}
}
