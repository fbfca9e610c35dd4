package bankdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Chase by brand", "JPMorgan Chase Bank, N.A.", "chase"},
		{"Chase short", "Welcome to CHASE online statement", "chase"},
		{"Galicia full name", "Banco de Galicia y Buenos Aires", "galicia"},
		{"Galicia short", "Resumen GALICIA cuenta corriente", "galicia"},
		{"Roela", "BANCO ROELA S.A. Resumen de cuenta", "roela_ar"},
		{"Santander", "Banco Santander, S.A. Extracto", "santander"},
		{"BBVA", "BBVA movimientos de cuenta", "bbva"},
		{"CaixaBank alt name", "Oficina La Caixa 0123", "caixabank"},
		{"Bank of America", "Bank of America statement", "bank_of_america"},
		{"Spanish fallback", "Fecha Importe Saldo movimientos", "generic_spanish"},
		{"English fallback", "Deposit and withdrawal summary", "generic_english"},
		{"Nothing", "lorem ipsum dolor", Unknown},
		{"Empty", "", Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.text))
		})
	}
}

func TestDetectBankNameBeatsLanguage(t *testing.T) {
	// A Galicia statement full of Spanish vocabulary still resolves to
	// the named bank, not the language fallback.
	text := "Banco Galicia\nFecha Saldo Importe\nmovimientos de la cuenta"
	assert.Equal(t, "galicia", Detect(text))
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "santander", Detect("SANTANDER"))
	assert.Equal(t, "santander", Detect("santander"))
}
