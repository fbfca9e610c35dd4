package report

import "strings"

type categoryRule struct {
	name     string
	keywords []string
}

// Rules are checked in order and the first hit wins. Keywords cover both
// Spanish and English statement vocabulary.
var categoryRules = []categoryRule{
	{"Food & Dining", []string{
		"restaurante", "restaurant", "cafe", "bar", "comida", "food",
		"mercadona", "carrefour", "supermercado", "grocery", "market",
	}},
	{"Transportation", []string{
		"gasolina", "gas", "taxi", "uber", "metro", "bus", "train",
		"parking", "aparcamiento", "peaje", "toll",
	}},
	{"Shopping", []string{
		"amazon", "ebay", "tienda", "shop", "store", "compra", "purchase",
		"zara", "h&m", "corte ingles",
	}},
	{"Bills & Utilities", []string{
		"luz", "agua", "gas", "telefono", "internet", "electric", "water",
		"phone", "utility", "bill", "factura", "recibo",
	}},
	{"Banking & Fees", []string{
		"comision", "fee", "interes", "interest", "transferencia", "transfer",
		"cajero", "atm", "banco", "bank",
	}},
	{"Income", []string{
		"nomina", "salary", "sueldo", "pago", "payment", "ingreso", "income",
	}},
	{"Healthcare", []string{
		"farmacia", "pharmacy", "medico", "doctor", "hospital", "clinic",
		"seguro", "insurance", "salud", "health",
	}},
}

// DefaultCategory is used when no keyword matches.
const DefaultCategory = "Other"

// Category assigns a spending category based on the transaction description.
func Category(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.name
			}
		}
	}
	return DefaultCategory
}
