package parsers

import (
	"regexp"
	"strings"

	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

// Line patterns for European-convention statements: date, description, then
// amount with optional trailing balance. The third pattern catches amounts
// with dotted thousands groups that the first two misread.
// Amounts are anchored to the end of the line; without the anchor a grouped
// amount like "1.000,00" truncates to "1.00" under the simple pattern.
var spanishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d+[.,]\d{2})\s+([-+]?\d+[.,]\d{2})\s*$`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d+[.,]\d{2})\s*$`),
	regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\s+(.+?)\s+([-+]?\d{1,3}(?:\.\d{3})*,\d{2})\s*$`),
}

// US-convention equivalents, with dollar signs tolerated next to amounts.
var englishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+([-+]?\$?\d+[.,]\d{2})\s+([-+]?\$?\d+[.,]\d{2})\s*$`),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})\s+(.+?)\s+([-+]?\$?\d+[.,]\d{2})\s*$`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s*$`),
}

// matchLines runs the ordered pattern list over each physical line; the
// first pattern that yields a valid date and an acceptable description wins
// the line. Malformed lines are skipped, never fatal.
func matchLines(text string, patterns []*regexp.Regexp, info models.AccountInfo, bankName string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pattern := range patterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			description := textutils.Clean(m[2], false)
			if len(description) < 3 || textutils.IsDigitsOnly(description) {
				continue
			}

			date, ok := dateutils.ParseToISO(m[1])
			if !ok {
				continue
			}

			amount, err := amountutils.Parse(strings.ReplaceAll(m[3], "$", ""))
			if err != nil {
				log.WithField("line", line).Debug("Skipping line with unparseable amount")
				continue
			}

			tx := models.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
			}
			if len(m) >= 5 && m[4] != "" {
				if balance, err := amountutils.Parse(strings.ReplaceAll(m[4], "$", "")); err == nil {
					tx.SetBalance(balance)
				}
			}
			finalizeTx(&tx, info, bankName)
			transactions = append(transactions, tx)
			break
		}
	}
	return transactions
}

// genericParser is the reusable pattern parser: a bank identity plus a
// pattern list and a currency rule. Regional and named-bank parsers are
// compositions of this rather than subclasses.
type genericParser struct {
	id       string
	name     string
	aliases  []string
	patterns []*regexp.Regexp
	currency currencyRule
}

func (p *genericParser) BankID() string    { return p.id }
func (p *genericParser) Aliases() []string { return p.aliases }
func (p *genericParser) BankName() string  { return p.name }

func (p *genericParser) Parse(in Input) ([]models.Transaction, error) {
	info := extractAccountInfo(in.Text, p.currency)
	return matchLines(in.Text, p.patterns, info, p.name), nil
}

// newGenericSpanish builds the fallback parser for Spanish-language
// statements. The aliases are Spanish banks without a dedicated parser.
func newGenericSpanish(Config) Parser {
	return &genericParser{
		id:       "generic_spanish",
		name:     "Spanish Bank",
		aliases:  []string{"bankia", "sabadell", "unicaja", "kutxabank", "ibercaja"},
		patterns: spanishPatterns,
		currency: baseCurrency,
	}
}

// newGenericArgentinian is the Spanish engine with Argentine currency
// defaults: ARS unless the document shows explicit dollar markers.
func newGenericArgentinian(Config) Parser {
	return &genericParser{
		id:       "generic_argentinian",
		name:     "Argentinian Bank",
		aliases:  []string{"argentina"},
		patterns: spanishPatterns,
		currency: argentineCurrency,
	}
}
