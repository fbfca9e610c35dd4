// Package dateutils parses the date formats seen across bank statements and
// normalizes them to ISO 8601.
package dateutils

import (
	"strings"
	"time"
)

// DateLayoutISO is the canonical output layout.
const DateLayoutISO = "2006-01-02"

// Layouts are tried in order. Day-first layouts come before the US
// month-first variants so ambiguous dates resolve the European way.
// Unpadded layouts accept both "5/5/2025" and "05/05/2025".
var layouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"2/1/06",
	"2-1-06",
	"06-1-2",
	"2.1.2006",
	"2.1.06",
	"1/2/2006",
	"1-2-2006",
	"2 1 2006",
	"2 1 06",
}

// twoDigitYear marks layouts whose year field is two digits; those need the
// century fixed up after parsing.
func twoDigitYear(layout string) bool {
	return !strings.Contains(layout, "2006")
}

// ParseToISO converts a date string to YYYY-MM-DD. The boolean is false when
// no known format matches; callers treat that as "skip this line", not as an
// error. Two-digit years below 50 map to 20xx, the rest to 19xx.
func ParseToISO(dateStr string) (string, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return "", false
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, dateStr)
		if err != nil {
			continue
		}
		if twoDigitYear(layout) {
			yy := t.Year() % 100
			year := 1900 + yy
			if yy < 50 {
				year = 2000 + yy
			}
			t = time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return t.Format(DateLayoutISO), true
	}
	return "", false
}

// IsValid reports whether the string matches any recognized date format.
func IsValid(dateStr string) bool {
	_, ok := ParseToISO(dateStr)
	return ok
}

// MonthKey reduces an ISO date to its YYYY-MM prefix for monthly rollups.
// Returns the input unchanged when it is shorter than a full date.
func MonthKey(isoDate string) string {
	if len(isoDate) >= 7 {
		return isoDate[:7]
	}
	return isoDate
}
