package parsers

import (
	"regexp"
	"strings"

	"fjacquet/statement-csv/internal/models"
)

// accountPatterns locate the account number line across languages. IBAN
// first, then the Spanish and English labels seen in real statements.
// The captures allow spaces but not newlines, so a label line never swallows
// the transaction line below it.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)IBAN[: \t]+([A-Z0-9][A-Z0-9 ]*)`),
	regexp.MustCompile(`(?i)N[úu]mero de cuenta[: \t]+([A-Z0-9][A-Z0-9 -]*)`),
	regexp.MustCompile(`(?i)Account number[: \t]+([A-Z0-9][A-Z0-9 -]*)`),
	regexp.MustCompile(`(?i)Cuenta[: \t]+([0-9][0-9 /-]*)`),
	regexp.MustCompile(`N° ?([0-9][0-9 -]*)`),
}

// currencyRule adjusts the detected currency for a document. The base rule
// applies everywhere; regional parsers wrap it with their own defaults.
type currencyRule func(text string, info *models.AccountInfo)

// baseCurrency is the default inference: EUR unless explicit dollar, pound
// or peso markers appear.
func baseCurrency(text string, info *models.AccountInfo) {
	upper := strings.ToUpper(text)
	switch {
	case containsAny(upper, "USD", "$", "DOLLAR"):
		info.Currency = "USD"
	case containsAny(upper, "GBP", "£", "POUND"):
		info.Currency = "GBP"
	case containsAny(upper, "ARS", "AR$", "PESO"):
		info.Currency = "ARS"
	default:
		info.Currency = "EUR"
	}
}

// argentineCurrency defaults to ARS: in Argentina the bare "$" glyph means
// pesos, so only explicit dollar indicators switch the document to USD.
func argentineCurrency(text string, info *models.AccountInfo) {
	baseCurrency(text, info)
	upper := strings.ToUpper(text)
	if containsAny(upper, "USD", "U$S", "U$") {
		info.Currency = "USD"
	} else {
		info.Currency = "ARS"
	}
}

// extractAccountInfo derives the per-document account number and currency
// applied to every transaction parsed from that document.
func extractAccountInfo(text string, currency currencyRule) models.AccountInfo {
	info := models.AccountInfo{Currency: "EUR"}

	for _, pattern := range accountPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			info.Number = strings.TrimSpace(m[1])
			break
		}
	}

	if currency == nil {
		currency = baseCurrency
	}
	currency(text, &info)
	return info
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
