package parsers

import (
	"regexp"
	"strings"

	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

// Galicia rows carry a DD/MM/YY date, a description, the movement amount and
// the running balance, both with dot thousands grouping and a comma decimal.
var galiciaLineRe = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+([+-]?\d{1,3}(?:\.\d{3})*,\d{2})\s+([+-]?\d{1,3}(?:\.\d{3})*,\d{2})\s*$`)

type galiciaParser struct {
	fallback genericParser
}

func newGalicia(Config) Parser {
	return &galiciaParser{genericParser{
		id:       "galicia",
		name:     "Banco Galicia",
		patterns: spanishPatterns,
		currency: argentineCurrency,
	}}
}

func (p *galiciaParser) BankID() string    { return p.fallback.id }
func (p *galiciaParser) Aliases() []string { return nil }
func (p *galiciaParser) BankName() string  { return p.fallback.name }

func (p *galiciaParser) Parse(in Input) ([]models.Transaction, error) {
	info := extractAccountInfo(in.Text, argentineCurrency)

	var txs []models.Transaction
	for _, line := range strings.Split(in.Text, "\n") {
		m := galiciaLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		desc := textutils.Clean(strings.TrimSpace(m[2]), false)
		if len(desc) < 3 || textutils.IsDigitsOnly(desc) {
			continue
		}
		iso, ok := dateutils.ParseToISO(m[1])
		if !ok {
			continue
		}
		amount, err := amountutils.Parse(m[3])
		if err != nil {
			log.WithField("value", m[3]).Debug("Skipping unparseable amount")
			continue
		}
		tx := models.Transaction{Date: iso, Description: desc, Amount: amount}
		if balance, err := amountutils.Parse(m[4]); err == nil {
			tx.SetBalance(balance)
		}
		finalizeTx(&tx, info, p.fallback.name)
		txs = append(txs, tx)
	}
	if len(txs) > 0 {
		return txs, nil
	}

	return matchLines(in.Text, p.fallback.patterns, info, p.fallback.name), nil
}
