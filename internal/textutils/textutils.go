// Package textutils provides text normalization for extracted statement text.
package textutils

import (
	"regexp"
	"strings"
)

var (
	// Characters worth keeping: word characters, whitespace, punctuation used
	// in dates/amounts, Spanish accents and common currency glyphs.
	unwantedRe   = regexp.MustCompile(`[^\w\s.,/()áéíóúüñÁÉÍÓÚÜÑ€$£¥-]`)
	spacesTabsRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw extracted text. With preserveLines false all
// whitespace collapses to single spaces; with preserveLines true newlines are
// kept so line-oriented parsers can split the result.
func Clean(text string, preserveLines bool) string {
	if text == "" {
		return ""
	}

	if preserveLines {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
		text = unwantedRe.ReplaceAllString(text, " ")
		text = spacesTabsRe.ReplaceAllString(text, " ")
		text = blankLinesRe.ReplaceAllString(text, "\n")
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = unwantedRe.ReplaceAllString(text, " ")
	text = spacesTabsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// IsDigitsOnly reports whether s consists solely of ASCII digits.
// Descriptions that are pure numbers are never valid transactions.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
