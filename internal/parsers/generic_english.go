package parsers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

const chaseBankName = "JPMorgan Chase"

// Section headings drive the sign of every amount that follows them.
type chaseSection int

const (
	sectionNone chaseSection = iota
	sectionDeposits
	sectionWithdrawals
	sectionFees
)

var (
	statementYearRe = regexp.MustCompile(`\b(20\d{2})\b`)
	chaseLineRe     = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2})\s+(.+)$`)
	chaseAmountRe   = regexp.MustCompile(`\$?([\d,]+\.\d{2})\s*$`)
)

// englishParser handles US-convention statements. When the text carries Chase
// markers it switches to a sectioned parse, because Chase statements print
// unsigned amounts whose sign is implied by the section heading.
type englishParser struct {
	genericParser
}

func newGenericEnglish(Config) Parser {
	return &englishParser{genericParser{
		id:       "generic_english",
		name:     "English Bank",
		aliases:  []string{"chase", "bank_of_america", "wells_fargo", "citibank", "hsbc", "barclays", "deutsche_bank"},
		patterns: englishPatterns,
		currency: baseCurrency,
	}}
}

func (p *englishParser) Parse(in Input) ([]models.Transaction, error) {
	lowered := strings.ToLower(in.Text)
	if strings.Contains(lowered, "chase") || strings.Contains(lowered, "jpmorgan") {
		return parseChase(in.Text), nil
	}
	return p.genericParser.Parse(in)
}

// statementYear returns the largest four digit year found in the first lines
// of the statement header. Chase transaction lines carry MM/DD only.
func statementYear(lines []string) int {
	year := 0
	for i, line := range lines {
		if i >= 10 {
			break
		}
		for _, m := range statementYearRe.FindAllStringSubmatch(line, -1) {
			if y, err := strconv.Atoi(m[1]); err == nil && y > year {
				year = y
			}
		}
	}
	if year == 0 {
		year = time.Now().Year()
	}
	return year
}

func chaseSectionFor(line string) (chaseSection, bool) {
	lowered := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.Contains(lowered, "deposits and additions"):
		return sectionDeposits, true
	case strings.Contains(lowered, "electronic withdrawals"), strings.Contains(lowered, "electronic withdrawal"):
		return sectionWithdrawals, true
	case lowered == "fees":
		return sectionFees, true
	}
	return sectionNone, false
}

func monthDayToISO(monthDay string, year int) (string, bool) {
	t, err := time.Parse("1/2", monthDay)
	if err != nil {
		return "", false
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(dateutils.DateLayoutISO), true
}

func parseChase(text string) []models.Transaction {
	lines := strings.Split(text, "\n")
	year := statementYear(lines)

	info := extractAccountInfo(text, baseCurrency)
	info.Currency = "USD"

	var txs []models.Transaction
	section := sectionNone
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// Total lines close a section and must win over the heading match,
		// "Total Deposits and Additions" contains the heading phrase itself.
		if strings.HasPrefix(trimmed, "Total ") {
			section = sectionNone
			continue
		}
		if s, ok := chaseSectionFor(trimmed); ok {
			section = s
			continue
		}
		if section == sectionNone {
			continue
		}
		upper := strings.ToUpper(trimmed)
		if strings.Contains(upper, "DATE") && strings.Contains(upper, "DESCRIPTION") {
			continue
		}

		m := chaseLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		rest := m[2]
		am := chaseAmountRe.FindStringSubmatch(rest)
		if am == nil {
			continue
		}
		desc := textutils.Clean(strings.TrimSpace(rest[:len(rest)-len(am[0])]), false)
		if len(desc) < 3 || textutils.IsDigitsOnly(desc) {
			continue
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(am[1], ",", ""))
		if err != nil {
			log.WithField("value", am[1]).Debug("Skipping unparseable Chase amount")
			continue
		}
		if section == sectionWithdrawals || section == sectionFees {
			amount = amount.Neg()
		}

		// Chase dates are month first.
		iso, ok := monthDayToISO(m[1], year)
		if !ok {
			continue
		}

		tx := models.Transaction{
			Date:        iso,
			Description: desc,
			Amount:      amount,
		}
		finalizeTx(&tx, info, chaseBankName)
		txs = append(txs, tx)
	}
	return txs
}
