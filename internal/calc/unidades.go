package calc

import (
	"strings"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/shopspring/decimal"
)

// Unidad is a human-facing display unit. Besides the three canonical values a
// product's raw UnidadMedida can pass through verbatim (resolver rule 5).
type Unidad string

const (
	UnidadKg     Unidad = "kg"
	UnidadGr     Unidad = "gr"
	UnidadUnidad Unidad = "unidad"
)

// CantidadDisplay is a quantity ready to show: value already converted into
// the chosen unit.
type CantidadDisplay struct {
	Valor  decimal.Decimal `json:"valor"`
	Unidad Unidad          `json:"unidad"`
}

// ResolverUnidad picks the display unit for an editable per-line quantity.
// Rules are evaluated in order, first match wins:
//  1. unit-basis products always show "unidad"
//  2. a gram marker in the portion text forces "gr" (overrides the basis)
//  3. portion-basis products show "unidad"
//  4. kilogram-basis products show "gr" below 1 kg, "kg" otherwise
//  5. anything else passes the raw basis through
func ResolverUnidad(p *model.Producto, cantidad decimal.Decimal) Unidad {
	switch {
	case p.UnidadMedida == model.UnidadMedidaUnidad:
		return UnidadUnidad
	case porcionEnGramos(p):
		return UnidadGr
	case p.UnidadMedida == model.UnidadMedidaPorcion:
		return UnidadUnidad
	case p.UnidadMedida == model.UnidadMedidaKilogramo:
		if cantidad.LessThan(uno) {
			return UnidadGr
		}
		return UnidadKg
	default:
		return Unidad(p.UnidadMedida)
	}
}

// ConvertirADisplay converts a stored (kilogram-basis) quantity into its
// resolved display unit. Only the gram branch rescales; everything else is
// identity.
func ConvertirADisplay(p *model.Producto, cantidad decimal.Decimal) CantidadDisplay {
	u := ResolverUnidad(p, cantidad)
	if u == UnidadGr {
		return CantidadDisplay{Valor: cantidad.Mul(mil), Unidad: UnidadGr}
	}
	return CantidadDisplay{Valor: cantidad, Unidad: u}
}

// ConvertirADisplayResumen is the purchasing-list policy for cross-event
// totals: mass products always display in kilograms regardless of magnitude
// (no gram fallback — a shopping list wants "0.2 kg", not "200 gr"), unit
// products always in units, portion products in kilograms only when their
// portion text implies grams.
//
// This deliberately diverges from ConvertirADisplay: per-line editing wants
// small numbers in grams, totals want kilograms. The two policies can
// disagree on the same product and that is expected.
func ConvertirADisplayResumen(p *model.Producto, total decimal.Decimal) CantidadDisplay {
	switch p.UnidadMedida {
	case model.UnidadMedidaKilogramo:
		return CantidadDisplay{Valor: total, Unidad: UnidadKg}
	case model.UnidadMedidaUnidad:
		return CantidadDisplay{Valor: total, Unidad: UnidadUnidad}
	case model.UnidadMedidaPorcion:
		if porcionEnGramos(p) {
			return CantidadDisplay{Valor: total, Unidad: UnidadKg}
		}
		return CantidadDisplay{Valor: total, Unidad: UnidadUnidad}
	default:
		return CantidadDisplay{Valor: total, Unidad: Unidad(p.UnidadMedida)}
	}
}

// DesdeEntradaDisplay turns a user-typed display value back into the stored
// kilogram-basis quantity. Exact inverse of ConvertirADisplay's gram branch.
func DesdeEntradaDisplay(_ *model.Producto, valor decimal.Decimal, unidad Unidad) decimal.Decimal {
	if unidad == UnidadGr {
		return valor.Div(mil)
	}
	return valor
}

func porcionEnGramos(p *model.Producto) bool {
	return p.PorcionPorPersona != nil &&
		strings.Contains(strings.ToLower(*p.PorcionPorPersona), "g")
}
