package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestRecalcularPresupuesto_SoloMenu(t *testing.T) {
	p := model.Presupuesto{
		Menu: &model.SeccionMenu{PrecioPorPersona: dec(10), TotalPersonas: 20, TVAPct: dec(20)},
	}
	out := RecalcularPresupuesto(p)
	require.NotNil(t, out.Menu)
	assert.Equal(t, "200", out.Menu.TotalHT.String())
	assert.Equal(t, "40", out.Menu.TVA.String())
	assert.Equal(t, "240", out.Menu.TotalTTC.String())
	assert.Equal(t, "200", out.TotalHT.String())
	assert.Equal(t, "40", out.TotalTVA.String())
	assert.Equal(t, "240", out.TotalTTC.String())
}

// Service rate and VAT are domain rules: any stored value is overwritten.
func TestRecalcularPresupuesto_ServicioFuerzaTarifa(t *testing.T) {
	p := model.Presupuesto{
		Servicio: &model.SeccionServicio{Mozos: 3, Horas: dec(5), PrecioPorHora: dec(99), TVAPct: dec(10)},
	}
	out := RecalcularPresupuesto(p)
	require.NotNil(t, out.Servicio)
	assert.Equal(t, "40", out.Servicio.PrecioPorHora.String())
	assert.Equal(t, "20", out.Servicio.TVAPct.String())
	// 3 mozos × 5 h × 40 = 600
	assert.Equal(t, "600", out.Servicio.TotalHT.String())
	assert.Equal(t, "120", out.Servicio.TVA.String())
	assert.Equal(t, "720", out.Servicio.TotalTTC.String())
}

func TestRecalcularPresupuesto_MaterialExcluyePersonalYAplicaSeguro(t *testing.T) {
	p := model.Presupuesto{
		Material: &model.SeccionMaterial{
			TVAPct: dec(20),
			Items: []model.MaterialItem{
				{Nombre: "Mesa plegable", Cantidad: dec(10), PrecioUnitario: dec(8)},   // 80
				{Nombre: "Serveur extra", Cantidad: dec(2), PrecioUnitario: dec(100)},  // excluded
				{Nombre: "SERVICIO limpieza", Cantidad: dec(1), PrecioUnitario: dec(50)}, // excluded
				{Nombre: "Mantel", Cantidad: dec(10), PrecioUnitario: dec(2)},          // 20
			},
		},
	}
	out := RecalcularPresupuesto(p)
	require.NotNil(t, out.Material)
	// subtotal 100 + 6% insurance = 106
	assert.Equal(t, "106", out.Material.TotalHT.String())
	assert.Equal(t, "21.2", out.Material.TVA.String())
	assert.Equal(t, "127.2", out.Material.TotalTTC.String())
}

func TestRecalcularPresupuesto_MaterialSeguroExplicito(t *testing.T) {
	diez := dec(10)
	p := model.Presupuesto{
		Material: &model.SeccionMaterial{
			SeguroPct: &diez,
			TVAPct:    dec(20),
			Items:     []model.MaterialItem{{Nombre: "Vajilla", Cantidad: dec(100), PrecioUnitario: dec(1)}},
		},
	}
	out := RecalcularPresupuesto(p)
	assert.Equal(t, "110", out.Material.TotalHT.String())
}

func TestRecalcularPresupuesto_BebidasFuerzaTVA(t *testing.T) {
	p := model.Presupuesto{
		Bebidas: &model.SeccionBebidas{PrecioPorPersona: dec(3), TotalPersonas: 40, TVAPct: dec(5.5)},
	}
	out := RecalcularPresupuesto(p)
	assert.Equal(t, "20", out.Bebidas.TVAPct.String())
	assert.Equal(t, "120", out.Bebidas.TotalHT.String())
	assert.Equal(t, "24", out.Bebidas.TVA.String())
}

func TestRecalcularPresupuesto_EntregaYDesplazamiento(t *testing.T) {
	p := model.Presupuesto{
		Entrega:        &model.SeccionEntrega{CostoEntrega: dec(60), CostoReprise: dec(40), TVAPct: dec(20)},
		Desplazamiento: &model.SeccionDesplazamiento{DistanciaKm: dec(120), PrecioPorKm: dec(0.5), TVAPct: dec(20)},
	}
	out := RecalcularPresupuesto(p)
	assert.Equal(t, "100", out.Entrega.TotalHT.String())
	assert.Equal(t, "60", out.Desplazamiento.TotalHT.String())
	assert.Equal(t, "160", out.TotalHT.String())
	assert.Equal(t, "32", out.TotalTVA.String())
	assert.Equal(t, "192", out.TotalTTC.String())
}

// The discount never touches the stored totals; it is carried separately.
func TestRecalcularPresupuesto_DescuentoNoSePliega(t *testing.T) {
	p := model.Presupuesto{
		Menu:         &model.SeccionMenu{PrecioPorPersona: dec(10), TotalPersonas: 20, TVAPct: dec(20)},
		DescuentoPct: dec(10),
	}
	out := RecalcularPresupuesto(p)
	assert.Equal(t, "200", out.TotalHT.String())
	assert.Equal(t, "240", out.TotalTTC.String())
	assert.Equal(t, "20", out.MontoDescuento.String())
}

// Absent sections are skipped entirely, not summed as zero-valued records.
func TestRecalcularPresupuesto_SeccionesAusentes(t *testing.T) {
	out := RecalcularPresupuesto(model.Presupuesto{})
	assert.Nil(t, out.Menu)
	assert.Nil(t, out.Servicio)
	assert.True(t, out.TotalHT.IsZero())
	assert.True(t, out.TotalTTC.IsZero())
}

// The input record is never mutated: recalculation returns a fresh copy.
func TestRecalcularPresupuesto_EsPuro(t *testing.T) {
	menu := &model.SeccionMenu{PrecioPorPersona: dec(10), TotalPersonas: 20, TVAPct: dec(20)}
	p := model.Presupuesto{Menu: menu}
	out := RecalcularPresupuesto(p)
	assert.True(t, menu.TotalHT.IsZero(), "la seccion original no debe modificarse")
	assert.NotSame(t, menu, out.Menu)
}
