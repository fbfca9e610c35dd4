package parsers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSantanderTwoDateLines(t *testing.T) {
	p := newSantander(DefaultConfig())
	text := "Banco Santander\n" +
		"01/09/2024 03/09/2024 Recibo de luz -120,50 1.879,50\n" +
		"05/09/2024 05/09/2024 Transferencia recibida 2.000,00"

	txs, err := p.Parse(Input{Text: text})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// The value date (second column) is the accounting date.
	assert.Equal(t, "2024-09-03", txs[0].Date)
	assert.Equal(t, "Recibo de luz", txs[0].Description)
	assert.True(t, decimal.NewFromFloat(-120.50).Equal(txs[0].Amount))
	require.True(t, txs[0].Balance.Valid)
	assert.True(t, decimal.NewFromFloat(1879.50).Equal(txs[0].Balance.Decimal))

	assert.Equal(t, "2024-09-05", txs[1].Date)
	assert.True(t, decimal.NewFromInt(2000).Equal(txs[1].Amount))
	assert.False(t, txs[1].Balance.Valid)
	assert.Equal(t, "Santander", txs[1].Bank)
}

func TestSantanderTwoDateRowNotMisreadByGenericPatterns(t *testing.T) {
	// On a two-date row the generic Spanish patterns would keep the
	// operation date and take the balance column as the amount.
	p := newSantander(DefaultConfig())
	txs, err := p.Parse(Input{Text: "01/05/2024 03/05/2024 COMPRA TARJETA -123,45 1.879,50"})
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "2024-05-03", txs[0].Date)
	assert.True(t, decimal.RequireFromString("-123.45").Equal(txs[0].Amount))
	require.True(t, txs[0].Balance.Valid)
	assert.True(t, decimal.RequireFromString("1879.50").Equal(txs[0].Balance.Decimal))
}

func TestSantanderFallsBackToSingleDateFormat(t *testing.T) {
	p := newSantander(DefaultConfig())
	txs, err := p.Parse(Input{Text: "05/05/2025 Compra en tienda -10,00"})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "2025-05-05", txs[0].Date)
	assert.Equal(t, "Santander", txs[0].Bank)
}

func TestBBVAAndCaixaBankUseGenericEngine(t *testing.T) {
	for _, tc := range []struct {
		parser Parser
		bank   string
	}{
		{newBBVA(DefaultConfig()), "BBVA"},
		{newCaixaBank(DefaultConfig()), "CaixaBank"},
	} {
		txs, err := tc.parser.Parse(Input{Text: "05/05/2025 Compra en tienda -10,00"})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, tc.bank, txs[0].Bank)
		assert.Equal(t, "EUR", txs[0].Currency)
	}
}
