package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Monto is a decimal that tolerates malformed numeric input. Upstream budget
// forms ship numbers as JSON numbers, quoted strings, comma-decimal strings or
// garbage; anything unreadable becomes zero instead of failing the request.
type Monto struct {
	decimal.Decimal
}

func NewMonto(d decimal.Decimal) Monto { return Monto{Decimal: d} }

func (m *Monto) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

func (m Monto) MarshalJSON() ([]byte, error) {
	return m.Decimal.MarshalJSON()
}
