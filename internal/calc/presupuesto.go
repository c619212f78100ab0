package calc

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// Domain rules fixed by the business, not defaults: they are re-asserted on
// every recalculation no matter what the stored record says.
var (
	precioHoraServicio = decimal.NewFromInt(40)
	tvaServicioPct     = decimal.NewFromInt(20)
	tvaBebidasPct      = decimal.NewFromInt(20)
	seguroPctDefecto   = decimal.NewFromInt(6)

	cien = decimal.NewFromInt(100)
)

// Staffing rows leak into the upstream material list; they are billed by the
// service section and must not be counted twice.
var nombresDePersonal = []string{"serveur", "servicio", "mozos"}

// RecalcularPresupuesto refreshes every present section's HT/TVA/TTC and the
// global totals, returning a new record — the input is never mutated. Absent
// sections are skipped, not treated as zero-valued. The optional discount is
// computed as a percentage of the global HT and carried in MontoDescuento
// only; TotalHT/TotalTVA/TotalTTC always remain pre-discount.
func RecalcularPresupuesto(p model.Presupuesto) model.Presupuesto {
	out := p
	out.Menu = recalcularMenu(p.Menu)
	out.Servicio = recalcularServicio(p.Servicio)
	out.Material = recalcularMaterial(p.Material)
	out.Entrega = recalcularEntrega(p.Entrega)
	out.Bebidas = recalcularBebidas(p.Bebidas)
	out.Desplazamiento = recalcularDesplazamiento(p.Desplazamiento)

	totalHT := decimal.Zero
	totalTVA := decimal.Zero
	sumar := func(ht, tva decimal.Decimal) {
		totalHT = totalHT.Add(ht)
		totalTVA = totalTVA.Add(tva)
	}
	if out.Menu != nil {
		sumar(out.Menu.TotalHT, out.Menu.TVA)
	}
	if out.Servicio != nil {
		sumar(out.Servicio.TotalHT, out.Servicio.TVA)
	}
	if out.Material != nil {
		sumar(out.Material.TotalHT, out.Material.TVA)
	}
	if out.Entrega != nil {
		sumar(out.Entrega.TotalHT, out.Entrega.TVA)
	}
	if out.Bebidas != nil {
		sumar(out.Bebidas.TotalHT, out.Bebidas.TVA)
	}
	if out.Desplazamiento != nil {
		sumar(out.Desplazamiento.TotalHT, out.Desplazamiento.TVA)
	}

	out.TotalHT = totalHT
	out.TotalTVA = totalTVA
	out.TotalTTC = totalHT.Add(totalTVA)
	out.MontoDescuento = totalHT.Mul(p.DescuentoPct).Div(cien)
	return out
}

func montoTVA(ht, pct decimal.Decimal) decimal.Decimal {
	return ht.Mul(pct).Div(cien)
}

func recalcularMenu(s *model.SeccionMenu) *model.SeccionMenu {
	if s == nil {
		return nil
	}
	out := *s
	out.TotalHT = out.PrecioPorPersona.Mul(decimal.NewFromInt(int64(out.TotalPersonas)))
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}

func recalcularServicio(s *model.SeccionServicio) *model.SeccionServicio {
	if s == nil {
		return nil
	}
	out := *s
	out.PrecioPorHora = precioHoraServicio
	out.TVAPct = tvaServicioPct
	out.TotalHT = decimal.NewFromInt(int64(out.Mozos)).Mul(out.Horas).Mul(precioHoraServicio)
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}

func recalcularMaterial(s *model.SeccionMaterial) *model.SeccionMaterial {
	if s == nil {
		return nil
	}
	out := *s
	out.Items = append([]model.MaterialItem(nil), s.Items...)

	subtotal := decimal.Zero
	for _, item := range out.Items {
		if esItemDePersonal(item.Nombre) {
			continue
		}
		subtotal = subtotal.Add(item.Cantidad.Mul(item.PrecioUnitario))
	}

	seguroPct := seguroPctDefecto
	if out.SeguroPct != nil {
		seguroPct = *out.SeguroPct
	}
	seguro := subtotal.Mul(seguroPct).Div(cien)

	out.TotalHT = subtotal.Add(seguro)
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}

func esItemDePersonal(nombre string) bool {
	bajo := strings.ToLower(nombre)
	for _, marca := range nombresDePersonal {
		if strings.Contains(bajo, marca) {
			return true
		}
	}
	return false
}

func recalcularEntrega(s *model.SeccionEntrega) *model.SeccionEntrega {
	if s == nil {
		return nil
	}
	out := *s
	out.TotalHT = out.CostoEntrega.Add(out.CostoReprise)
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}

func recalcularBebidas(s *model.SeccionBebidas) *model.SeccionBebidas {
	if s == nil {
		return nil
	}
	out := *s
	out.TVAPct = tvaBebidasPct
	out.TotalHT = out.PrecioPorPersona.Mul(decimal.NewFromInt(int64(out.TotalPersonas)))
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}

func recalcularDesplazamiento(s *model.SeccionDesplazamiento) *model.SeccionDesplazamiento {
	if s == nil {
		return nil
	}
	out := *s
	out.TotalHT = out.DistanciaKm.Mul(out.PrecioPorKm)
	out.TVA = montoTVA(out.TotalHT, out.TVAPct)
	out.TotalTTC = out.TotalHT.Add(out.TVA)
	return &out
}
