package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToISO(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"Slash European", "05/05/2025", "2025-05-05", true},
		{"Unpadded", "5/5/2025", "2025-05-05", true},
		{"Dashes", "05-05-2025", "2025-05-05", true},
		{"ISO passthrough", "2025-05-05", "2025-05-05", true},
		{"Dots", "05.05.2025", "2025-05-05", true},
		{"Two digit year this century", "05/05/25", "2025-05-05", true},
		{"Two digit year last century", "05/05/75", "1975-05-05", true},
		{"Day over twelve stays day-first", "30/01/2024", "2024-01-30", true},
		{"US month-first fallback", "1/30/2024", "2024-01-30", true},
		{"Spaces", "5 5 2025", "2025-05-05", true},
		{"Whitespace trimmed", "  05/05/2025  ", "2025-05-05", true},
		{"Empty", "", "", false},
		{"Garbage", "not a date", "", false},
		{"Day out of range", "32/01/2025", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseToISO(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseToISOEquivalentInputs(t *testing.T) {
	// Every supported spelling of the same day normalizes identically.
	inputs := []string{"05/05/2025", "5/5/2025", "05-05-2025", "2025-05-05", "05.05.2025", "05/05/25"}
	for _, input := range inputs {
		got, ok := ParseToISO(input)
		assert.True(t, ok, input)
		assert.Equal(t, "2025-05-05", got, input)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("2024-09-02"))
	assert.True(t, IsValid("02/09/2024"))
	assert.False(t, IsValid("SALDO"))
	assert.False(t, IsValid(""))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-05", MonthKey("2025-05-05"))
	assert.Equal(t, "2025-05", MonthKey("2025-05"))
	assert.Equal(t, "2025", MonthKey("2025"))
}
