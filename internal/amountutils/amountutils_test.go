package amountutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"European grouped", "1.234,56", "1234.56"},
		{"US grouped", "1,234.56", "1234.56"},
		{"Plain decimal", "1234.56", "1234.56"},
		{"European no grouping", "-1000,00", "-1000"},
		{"Negative grouped", "-1.000,00", "-1000"},
		{"Explicit plus", "+500,25", "500.25"},
		{"Euro symbol", "€1.234,56", "1234.56"},
		{"Dollar symbol", "$1,234.56", "1234.56"},
		{"Parenthesized is negative", "(100.00)", "-100"},
		{"Zero", "0,00", "0"},
		{"Empty is zero", "", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			expected, _ := decimal.NewFromString(tc.expected)
			assert.True(t, expected.Equal(got), "got %s, want %s", got, expected)
		})
	}
}

func TestParseBothConventionsAgree(t *testing.T) {
	eu, err := Parse("1.234,56")
	require.NoError(t, err)
	us, err := Parse("1,234.56")
	require.NoError(t, err)
	assert.True(t, eu.Equal(us))
	assert.True(t, eu.Equal(decimal.NewFromFloat(1234.56)))
}

func TestParseNoDigits(t *testing.T) {
	for _, input := range []string{"€", "--", "abc"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"European", "48.829,05", "48829.05"},
		{"Negative European", "-1.234,56", "-1234.56"},
		{"US grouped", "1,234.56", "1234.56"},
		{"Comma before dot", "1,234.56", "1234.56"},
		{"Plain", "500.00", "500"},
		{"Non-breaking space grouping", "1 234,56", "1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected, _ := decimal.NewFromString(tc.expected)
			got := ParseLoose(tc.input)
			assert.True(t, expected.Equal(got), "got %s, want %s", got, expected)
		})
	}
}

func TestParseLooseUnparseableIsZero(t *testing.T) {
	assert.True(t, ParseLoose("garbage").IsZero())
}

func TestFormat(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)
	assert.Equal(t, "1234.50 €", Format(amount, "EUR"))
	assert.Equal(t, "$1234.50", Format(amount, "USD"))
	assert.Equal(t, "£1234.50", Format(amount, "GBP"))
	assert.Equal(t, "1234.50 ARS", Format(amount, "ARS"))
	assert.Equal(t, "1234.50", Format(amount, ""))
}
