package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

func productoKilo(nombre string) *model.Producto {
	return &model.Producto{Nombre: nombre, Categoria: model.CategoriaCarnesClasicas, UnidadMedida: model.UnidadMedidaKilogramo}
}

func TestResolverUnidad_KilogramoPorMagnitud(t *testing.T) {
	p := productoKilo("Vacio")
	assert.Equal(t, UnidadGr, ResolverUnidad(p, decimal.NewFromFloat(0.5)))
	assert.Equal(t, UnidadKg, ResolverUnidad(p, decimal.NewFromInt(2)))
	// exactly 1 kg is not "below 1" — stays in kilograms
	assert.Equal(t, UnidadKg, ResolverUnidad(p, decimal.NewFromInt(1)))
}

func TestResolverUnidad_UnidadSiempreGana(t *testing.T) {
	p := &model.Producto{UnidadMedida: model.UnidadMedidaUnidad, PorcionPorPersona: ptr("30 gr")}
	// unit basis wins even with a gram marker in the portion text
	assert.Equal(t, UnidadUnidad, ResolverUnidad(p, decimal.NewFromFloat(0.2)))
}

func TestResolverUnidad_PorcionConGramos(t *testing.T) {
	conGramos := &model.Producto{UnidadMedida: model.UnidadMedidaPorcion, PorcionPorPersona: ptr("83,3 gr")}
	assert.Equal(t, UnidadGr, ResolverUnidad(conGramos, decimal.NewFromInt(5)))

	sinGramos := &model.Producto{UnidadMedida: model.UnidadMedidaPorcion, PorcionPorPersona: ptr("1 feta")}
	assert.Equal(t, UnidadUnidad, ResolverUnidad(sinGramos, decimal.NewFromInt(5)))
}

func TestResolverUnidad_TipoDesconocidoPasaVerbatim(t *testing.T) {
	p := &model.Producto{UnidadMedida: "docena"}
	assert.Equal(t, Unidad("docena"), ResolverUnidad(p, decimal.NewFromInt(3)))
}

func TestConvertirADisplay_RamaGramos(t *testing.T) {
	p := productoKilo("Chorizo")
	d := ConvertirADisplay(p, decimal.NewFromFloat(0.5))
	assert.Equal(t, UnidadGr, d.Unidad)
	assert.Equal(t, "500", d.Valor.String())

	d = ConvertirADisplay(p, decimal.NewFromInt(2))
	assert.Equal(t, UnidadKg, d.Unidad)
	assert.Equal(t, "2", d.Valor.String())
}

// Purchasing totals never fall back to grams: 0.2 kg stays 0.2 kg.
func TestConvertirADisplayResumen_KiloSinGramos(t *testing.T) {
	p := productoKilo("Morcilla")
	d := ConvertirADisplayResumen(p, decimal.NewFromFloat(0.2))
	assert.Equal(t, UnidadKg, d.Unidad)
	assert.Equal(t, "0.2", d.Valor.String())
}

func TestConvertirADisplayResumen_PorcionYUnidad(t *testing.T) {
	enGramos := &model.Producto{UnidadMedida: model.UnidadMedidaPorcion, PorcionPorPersona: ptr("30 gr")}
	d := ConvertirADisplayResumen(enGramos, decimal.NewFromFloat(1.2))
	assert.Equal(t, UnidadKg, d.Unidad)
	assert.Equal(t, "1.2", d.Valor.String())

	porPieza := &model.Producto{UnidadMedida: model.UnidadMedidaPorcion, PorcionPorPersona: ptr("1 feta")}
	d = ConvertirADisplayResumen(porPieza, decimal.NewFromInt(40))
	assert.Equal(t, UnidadUnidad, d.Unidad)

	unidad := &model.Producto{UnidadMedida: model.UnidadMedidaUnidad}
	d = ConvertirADisplayResumen(unidad, decimal.NewFromInt(12))
	assert.Equal(t, UnidadUnidad, d.Unidad)
	assert.Equal(t, "12", d.Valor.String())
}

// The two display policies disagree on a sub-kilogram mass quantity, and that
// divergence is intentional: per-line editing shows grams, totals show kg.
func TestPoliticasDeDisplayDivergen(t *testing.T) {
	p := productoKilo("Provoleta")
	linea := ConvertirADisplay(p, decimal.NewFromFloat(0.3))
	resumen := ConvertirADisplayResumen(p, decimal.NewFromFloat(0.3))
	assert.Equal(t, UnidadGr, linea.Unidad)
	assert.Equal(t, UnidadKg, resumen.Unidad)
}

func TestDesdeEntradaDisplay_RoundTrip(t *testing.T) {
	casos := []struct {
		p        *model.Producto
		cantidad decimal.Decimal
	}{
		{productoKilo("Asado"), decimal.NewFromFloat(0.35)},
		{productoKilo("Asado"), decimal.NewFromInt(4)},
		{&model.Producto{UnidadMedida: model.UnidadMedidaUnidad}, decimal.NewFromInt(7)},
		{&model.Producto{UnidadMedida: model.UnidadMedidaPorcion, PorcionPorPersona: ptr("83,3 gr")}, decimal.NewFromFloat(0.0833)},
	}
	for _, c := range casos {
		d := ConvertirADisplay(c.p, c.cantidad)
		vuelta := DesdeEntradaDisplay(c.p, d.Valor, d.Unidad)
		assert.True(t, vuelta.Equal(c.cantidad), "round-trip %s %s → %s", c.cantidad, d.Unidad, vuelta)
	}
}
