package parsers

import (
	"regexp"
	"strings"

	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

// Santander statements print an operation date and a value date per row. The
// value date is the accounting date, so it is the one kept. Amounts appear
// both plain and with dotted thousands groups.
const (
	santanderDate   = `(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`
	santanderAmount = `([-+]?\d{1,3}(?:\.\d{3})*,\d{2}|[-+]?\d+[.,]\d{2})`
)

var santanderPatterns = []*regexp.Regexp{
	regexp.MustCompile(santanderDate + `\s+` + santanderDate + `\s+(.+?)\s+` + santanderAmount + `\s+` + santanderAmount + `\s*$`),
	regexp.MustCompile(santanderDate + `\s+` + santanderDate + `\s+(.+?)\s+` + santanderAmount + `\s*$`),
}

type santanderParser struct {
	fallback genericParser
}

func newSantander(Config) Parser {
	return &santanderParser{genericParser{
		id:       "santander",
		name:     "Santander",
		patterns: spanishPatterns,
		currency: baseCurrency,
	}}
}

func (p *santanderParser) BankID() string    { return p.fallback.id }
func (p *santanderParser) Aliases() []string { return nil }
func (p *santanderParser) BankName() string  { return p.fallback.name }

func (p *santanderParser) Parse(in Input) ([]models.Transaction, error) {
	info := extractAccountInfo(in.Text, baseCurrency)

	// Two-date rows must be read by the Santander patterns before the
	// generic engine sees them: the generic patterns would keep the
	// operation date and read the trailing balance as the amount.
	var txs []models.Transaction
	for _, line := range strings.Split(in.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pattern := range santanderPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			desc := textutils.Clean(strings.TrimSpace(m[3]), false)
			if len(desc) < 3 || textutils.IsDigitsOnly(desc) {
				break
			}
			iso, ok := dateutils.ParseToISO(m[2])
			if !ok {
				break
			}
			amount, err := amountutils.Parse(m[4])
			if err != nil {
				log.WithField("value", m[4]).Debug("Skipping unparseable amount")
				break
			}
			tx := models.Transaction{Date: iso, Description: desc, Amount: amount}
			if len(m) > 5 && m[5] != "" {
				if balance, err := amountutils.Parse(m[5]); err == nil {
					tx.SetBalance(balance)
				}
			}
			finalizeTx(&tx, info, p.fallback.name)
			txs = append(txs, tx)
			break
		}
	}
	if len(txs) > 0 {
		return txs, nil
	}

	// Single-date layouts fall through to the generic Spanish engine.
	return matchLines(in.Text, p.fallback.patterns, info, p.fallback.name), nil
}

func newBBVA(Config) Parser {
	return &genericParser{
		id:       "bbva",
		name:     "BBVA",
		patterns: spanishPatterns,
		currency: baseCurrency,
	}
}

func newCaixaBank(Config) Parser {
	return &genericParser{
		id:       "caixabank",
		name:     "CaixaBank",
		patterns: spanishPatterns,
		currency: baseCurrency,
	}
}
