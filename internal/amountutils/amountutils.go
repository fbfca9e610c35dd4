// Package amountutils converts locale-specific monetary strings into decimals.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	currencySymbolRe = regexp.MustCompile(`[€$£¥]`)
	europeanShapeRe  = regexp.MustCompile(`^[-+]?\d{1,3}(?:\.\d{3})*,\d{2}$`)
	usShapeRe        = regexp.MustCompile(`^[-+]?\d{1,3}(?:,\d{3})*\.\d{2}$`)
	strayCharsRe     = regexp.MustCompile(`[^\d.\-+]`)
)

// Parse interprets a monetary string and returns its decimal value.
// It strips currency symbols, treats parenthesized values as negative, and
// disambiguates European ("1.234,56") from US ("1,234.56") separator
// conventions by shape before falling back to a permissive strip-and-parse.
func Parse(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	s := strings.TrimSpace(amountStr)
	s = currencySymbolRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// Accounting convention: (123.45) means -123.45.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	switch {
	case europeanShapeRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case usShapeRe.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
		s = strayCharsRe.ReplaceAllString(s, "")
	}

	if !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, fmt.Errorf("cannot parse amount: %s", amountStr)
	}

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse amount '%s': %w", amountStr, err)
	}
	return dec, nil
}

// ParseLoose handles amounts with non-breaking or narrow spaces as grouping
// separators, as produced by some statement layouts. The sign is preserved.
func ParseLoose(amountStr string) decimal.Decimal {
	s := strings.NewReplacer("\u202f", "", "\u00a0", "", " ", "").Replace(amountStr)
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		if strings.Index(s, ",") < strings.Index(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	} else if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		log.WithField("amount", amountStr).Debug("Unparseable loose amount, using zero")
		return decimal.Zero
	}
	return dec.Round(2)
}

// Format renders an amount for display with its currency code or symbol.
func Format(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	switch strings.ToUpper(currency) {
	case "EUR":
		return formatted + " €"
	case "USD":
		return "$" + formatted
	case "GBP":
		return "£" + formatted
	case "":
		return formatted
	default:
		return formatted + " " + currency
	}
}
