// Package validate is the final gate between parser output and export.
package validate

import (
	"github.com/sirupsen/logrus"

	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Clean drops transactions without a valid date or a usable description and
// normalizes the fields of the survivors. Running it twice yields the same
// result as running it once.
func Clean(txs []models.Transaction) []models.Transaction {
	valid := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date == "" || !dateutils.IsValid(tx.Date) {
			log.WithField("date", tx.Date).Debug("Dropping transaction with invalid date")
			continue
		}
		tx.Description = textutils.Clean(tx.Description, false)
		if len(tx.Description) < 3 || textutils.IsDigitsOnly(tx.Description) {
			log.WithFields(logrus.Fields{
				"date":        tx.Date,
				"description": tx.Description,
			}).Debug("Dropping transaction with unusable description")
			continue
		}
		if tx.Type == "" {
			tx.Type = models.DeriveType(tx.Amount)
		}
		valid = append(valid, tx)
	}
	return valid
}
