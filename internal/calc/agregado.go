package calc

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// TotalIngrediente is the grand total of one distinct product across events.
type TotalIngrediente struct {
	Producto *model.Producto
	Cantidad decimal.Decimal
}

// Agregado is the purchasing summary for a set of events. Totales keeps the
// order in which each product was first encountered across the full event
// walk; PorCategoria regroups the same entries by category, preserving that
// order within each bucket. No sort is applied.
type Agregado struct {
	Totales      []TotalIngrediente
	PorCategoria map[string][]TotalIngrediente
}

// AgregarEventos walks every ingredient of every event and folds quantities
// into per-product grand totals. Combo lines with registered constituents are
// expanded first and contribute through their ingredients — the combo product
// itself never appears in the totals in that case. Combos without registered
// constituents, and plain products, contribute under their own identity.
func AgregarEventos(eventos []model.Evento, partes PartesPorCombo) Agregado {
	var totales []TotalIngrediente
	posicion := make(map[uuid.UUID]int)

	acumular := func(p *model.Producto, cantidad decimal.Decimal) {
		if i, visto := posicion[p.ID]; visto {
			totales[i].Cantidad = totales[i].Cantidad.Add(cantidad)
			return
		}
		posicion[p.ID] = len(totales)
		totales = append(totales, TotalIngrediente{Producto: p, Cantidad: cantidad})
	}

	for i := range eventos {
		evento := &eventos[i]
		for _, ing := range evento.Ingredientes {
			if ing.Producto == nil {
				continue
			}
			cantidad := CantidadTotalLinea(ing, evento.CantidadInvitados)
			for _, parte := range ExpandirCombo(ing.Producto, cantidad, partes) {
				acumular(parte.Producto, parte.Cantidad)
			}
		}
	}

	porCategoria := make(map[string][]TotalIngrediente)
	for _, t := range totales {
		categoria := model.CategoriaODefecto(t.Producto)
		porCategoria[categoria] = append(porCategoria[categoria], t)
	}

	return Agregado{Totales: totales, PorCategoria: porCategoria}
}
