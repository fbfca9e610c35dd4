package parsers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaliciaRows(t *testing.T) {
	p := newGalicia(DefaultConfig())
	text := "Banco Galicia\n" +
		"05/05/25 DEB. AUTOM. DE SERV. -48.829,05 123.267,71\n" +
		"06/05/25 TRANSFERENCIA RECIBIDA 250.000,00 373.267,71"

	txs, err := p.Parse(Input{Text: text})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "2025-05-05", txs[0].Date)
	assert.Equal(t, "DEB. AUTOM. DE SERV.", txs[0].Description)
	assert.True(t, decimal.NewFromFloat(-48829.05).Equal(txs[0].Amount))
	require.True(t, txs[0].Balance.Valid)
	assert.True(t, decimal.NewFromFloat(123267.71).Equal(txs[0].Balance.Decimal))
	assert.Equal(t, "Debit", txs[0].Type)

	assert.Equal(t, "2025-05-06", txs[1].Date)
	assert.True(t, decimal.NewFromInt(250000).Equal(txs[1].Amount))
	assert.Equal(t, "Credit", txs[1].Type)

	for _, tx := range txs {
		assert.Equal(t, "Banco Galicia", tx.Bank)
		assert.Equal(t, "ARS", tx.Currency)
	}
}

func TestGaliciaFallsBackToArgentineEngine(t *testing.T) {
	p := newGalicia(DefaultConfig())
	// Four digit year rows do not match the dedicated pattern.
	txs, err := p.Parse(Input{Text: "05/05/2025 Compra en tienda -1000,00 5000,00"})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Banco Galicia", txs[0].Bank)
	assert.Equal(t, "ARS", txs[0].Currency)
	assert.True(t, decimal.NewFromInt(-1000).Equal(txs[0].Amount))
}
