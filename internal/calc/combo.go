package calc

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// PartesPorCombo resolves a combo product's registered constituents.
// Implementations typically close over a preloaded map.
type PartesPorCombo func(comboID uuid.UUID) []model.ComboIngrediente

// ParteCombo is one flattened constituent of an expanded combo.
type ParteCombo struct {
	Producto *model.Producto
	Cantidad decimal.Decimal
}

// The catalog only models one level of combo nesting, but nothing in the data
// enforces acyclicity, so expansion carries a depth cap instead of trusting it.
const maxProfundidadCombo = 8

// ExpandirCombo flattens a combo into (ingredient, quantity) pairs, scaling
// each registered constituent by multiplicador. A combo with no registered
// constituents is emitted unchanged as a leaf — catalog data may lag behind a
// newly marked combo, and that must not break a purchasing list. Constituents
// whose product record is missing are skipped.
func ExpandirCombo(combo *model.Producto, multiplicador decimal.Decimal, partes PartesPorCombo) []ParteCombo {
	return expandir(combo, multiplicador, partes, 0)
}

func expandir(p *model.Producto, mult decimal.Decimal, partes PartesPorCombo, profundidad int) []ParteCombo {
	if p == nil {
		return nil
	}
	if !p.EsCombo || partes == nil || profundidad >= maxProfundidadCombo {
		return []ParteCombo{{Producto: p, Cantidad: mult}}
	}
	hijos := partes(p.ID)
	if len(hijos) == 0 {
		return []ParteCombo{{Producto: p, Cantidad: mult}}
	}
	resultado := make([]ParteCombo, 0, len(hijos))
	for _, h := range hijos {
		if h.Ingrediente == nil {
			continue
		}
		resultado = append(resultado, expandir(h.Ingrediente, h.Cantidad.Mul(mult), partes, profundidad+1)...)
	}
	return resultado
}

// PrecioCombo derives a combo's price from its constituents: the sum of each
// ingredient's unit price times its quantity per combo. Combos are never
// priced independently.
func PrecioCombo(partes []model.ComboIngrediente) decimal.Decimal {
	total := decimal.Zero
	for _, parte := range partes {
		if parte.Ingrediente == nil {
			continue
		}
		total = total.Add(parte.Ingrediente.PrecioPorPorcion.Mul(parte.Cantidad))
	}
	return total
}
