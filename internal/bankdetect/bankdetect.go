// Package bankdetect classifies statement text into a bank identifier.
package bankdetect

import "strings"

// Unknown is returned when no keyword matches.
const Unknown = "unknown"

// Generic fallback identifiers by statement language.
const (
	GenericSpanish = "generic_spanish"
	GenericEnglish = "generic_english"
)

type keywordRule struct {
	keyword string
	bankID  string
}

// Ordering matters: specific bank names are checked before generic
// institution names, and those before the language fallbacks, so that e.g. a
// Galicia statement containing the word "saldo" still resolves to galicia.
var bankRules = []keywordRule{
	// Named institutions, most specific branding first.
	{"jpmorgan", "chase"},
	{"chase", "chase"},
	{"banco de galicia", "galicia"},
	{"banco galicia", "galicia"},
	{"galicia", "galicia"},
	{"banco roela", "roela_ar"},
	{"roela", "roela_ar"},
	{"santander", "santander"},
	{"bbva", "bbva"},
	{"caixabank", "caixabank"},
	{"la caixa", "caixabank"},
	{"bankia", "bankia"},
	{"sabadell", "sabadell"},
	{"unicaja", "unicaja"},
	{"kutxabank", "kutxabank"},
	{"ibercaja", "ibercaja"},
	{"bank of america", "bank_of_america"},
	{"wells fargo", "wells_fargo"},
	{"citibank", "citibank"},
	{"hsbc", "hsbc"},
	{"barclays", "barclays"},
	{"deutsche bank", "deutsche_bank"},
}

// Language fallbacks: domain vocabulary that identifies the statement
// language when no bank name is present.
var languageRules = []keywordRule{
	{"saldo", GenericSpanish},
	{"cuenta", GenericSpanish},
	{"fecha", GenericSpanish},
	{"importe", GenericSpanish},
	{"movimientos", GenericSpanish},
	{"deposit", GenericEnglish},
	{"withdrawal", GenericEnglish},
	{"statement", GenericEnglish},
	{"account balance", GenericEnglish},
}

// Detect lowercases the text and returns the first matching identifier from
// the ordered keyword table, falling back to language detection and finally
// to Unknown.
func Detect(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range bankRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.bankID
		}
	}
	for _, rule := range languageRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.bankID
		}
	}
	return Unknown
}
