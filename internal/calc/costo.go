package calc

import (
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// CostoIngrediente is the cost contribution of a single event line.
type CostoIngrediente struct {
	Producto      *model.Producto
	CantidadTotal decimal.Decimal
	Costo         decimal.Decimal
}

// CostoEvento is the cost report for one event.
type CostoEvento struct {
	CostoTotal       decimal.Decimal
	CostoPorInvitado decimal.Decimal
	Ingredientes     []CostoIngrediente
	PorCategoria     map[string]decimal.Decimal
}

// CantidadTotalLinea is the event-level quantity of one line: per-person
// quantity scaled by the guest count, unless the line carries a fixed
// per-event amount.
func CantidadTotalLinea(ing model.EventoIngrediente, invitados int) decimal.Decimal {
	if ing.CantidadFija {
		return ing.CantidadPorPersona
	}
	return ing.CantidadPorPersona.Mul(decimal.NewFromInt(int64(invitados)))
}

// CalcularCostoEvento computes an event's total cost, average cost per guest,
// per-line costs and a per-category breakdown.
//
// Combos are NOT expanded here: cost attribution stays at the sellable-item
// level, so a combo line is reported as-is at its derived price. Expansion
// into raw ingredients is the aggregator's job (purchasing, not costing).
// Lines whose product record is missing are skipped.
func CalcularCostoEvento(evento *model.Evento) CostoEvento {
	resultado := CostoEvento{
		CostoTotal:       decimal.Zero,
		CostoPorInvitado: decimal.Zero,
		Ingredientes:     make([]CostoIngrediente, 0, len(evento.Ingredientes)),
		PorCategoria:     make(map[string]decimal.Decimal),
	}

	for _, ing := range evento.Ingredientes {
		if ing.Producto == nil {
			continue
		}
		cantidad := CantidadTotalLinea(ing, evento.CantidadInvitados)
		costo := ing.Producto.PrecioPorPorcion.Mul(cantidad)

		resultado.CostoTotal = resultado.CostoTotal.Add(costo)
		resultado.Ingredientes = append(resultado.Ingredientes, CostoIngrediente{
			Producto:      ing.Producto,
			CantidadTotal: cantidad,
			Costo:         costo,
		})

		categoria := model.CategoriaODefecto(ing.Producto)
		resultado.PorCategoria[categoria] = resultado.PorCategoria[categoria].Add(costo)
	}

	if evento.CantidadInvitados > 0 {
		resultado.CostoPorInvitado = resultado.CostoTotal.Div(decimal.NewFromInt(int64(evento.CantidadInvitados)))
	}
	return resultado
}
