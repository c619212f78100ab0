package calc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

func linea(p *model.Producto, porPersona float64, fija bool) model.EventoIngrediente {
	return model.EventoIngrediente{
		ID:                 uuid.New(),
		ProductoID:         p.ID,
		Producto:           p,
		CantidadPorPersona: decimal.NewFromFloat(porPersona),
		CantidadFija:       fija,
	}
}

func TestCalcularCostoEvento_TotalesYPromedio(t *testing.T) {
	carne := nuevoIngrediente("Vacio", 18)          // 18/kg
	pan := nuevoIngrediente("Pan de campo", 4)      // 4/kg
	pan.Categoria = model.CategoriaPan

	evento := &model.Evento{
		Nombre:            "Casamiento Lopez",
		CantidadInvitados: 50,
		Ingredientes: []model.EventoIngrediente{
			linea(carne, 0.4, false), // 0.4 × 50 = 20 kg → 360
			linea(pan, 0.1, false),   // 0.1 × 50 = 5 kg → 20
		},
	}

	costo := CalcularCostoEvento(evento)
	assert.Equal(t, "380", costo.CostoTotal.String())
	assert.Equal(t, "7.6", costo.CostoPorInvitado.String())
	require.Len(t, costo.Ingredientes, 2)
	assert.Equal(t, "20", costo.Ingredientes[0].CantidadTotal.String())
	assert.Equal(t, "360", costo.Ingredientes[0].Costo.String())
	assert.Equal(t, "360", costo.PorCategoria[model.CategoriaCarnesClasicas].String())
	assert.Equal(t, "20", costo.PorCategoria[model.CategoriaPan].String())
}

// Fixed-quantity lines are per-event totals, never scaled by guests.
func TestCalcularCostoEvento_CantidadFija(t *testing.T) {
	parrilla := nuevoIngrediente("Alquiler parrilla", 120)
	parrilla.Categoria = model.CategoriaMaterial
	parrilla.UnidadMedida = model.UnidadMedidaUnidad

	evento := &model.Evento{
		CantidadInvitados: 80,
		Ingredientes:      []model.EventoIngrediente{linea(parrilla, 2, true)},
	}
	costo := CalcularCostoEvento(evento)
	assert.Equal(t, "240", costo.CostoTotal.String())
	assert.Equal(t, "2", costo.Ingredientes[0].CantidadTotal.String())
}

func TestCalcularCostoEvento_CeroInvitados(t *testing.T) {
	parrilla := nuevoIngrediente("Alquiler parrilla", 120)
	evento := &model.Evento{
		CantidadInvitados: 0,
		Ingredientes:      []model.EventoIngrediente{linea(parrilla, 1, true)},
	}
	costo := CalcularCostoEvento(evento)
	assert.Equal(t, "120", costo.CostoTotal.String())
	assert.True(t, costo.CostoPorInvitado.IsZero())
}

func TestCalcularCostoEvento_CategoriaFaltante(t *testing.T) {
	sinCategoria := nuevoIngrediente("Hielo", 2)
	sinCategoria.Categoria = ""
	evento := &model.Evento{
		CantidadInvitados: 10,
		Ingredientes:      []model.EventoIngrediente{linea(sinCategoria, 0.5, false)},
	}
	costo := CalcularCostoEvento(evento)
	assert.Equal(t, "10", costo.PorCategoria[model.CategoriaSinAsignar].String())
}

// Cost attribution stays at the sellable-item level: a combo line is costed
// as-is, not expanded into constituents.
func TestCalcularCostoEvento_ComboNoSeExpande(t *testing.T) {
	combo := nuevoCombo("Tabla fuegos")
	combo.PrecioPorPorcion = decimal.NewFromInt(30)

	evento := &model.Evento{
		CantidadInvitados: 10,
		Ingredientes:      []model.EventoIngrediente{linea(combo, 1, false)},
	}
	costo := CalcularCostoEvento(evento)
	require.Len(t, costo.Ingredientes, 1)
	assert.Equal(t, combo.ID, costo.Ingredientes[0].Producto.ID)
	assert.Equal(t, "300", costo.CostoTotal.String())
}

func TestCalcularCostoEvento_ProductoFaltanteSeOmite(t *testing.T) {
	evento := &model.Evento{
		CantidadInvitados: 10,
		Ingredientes: []model.EventoIngrediente{
			{ID: uuid.New(), CantidadPorPersona: decimal.NewFromInt(1)}, // sin Producto
		},
	}
	costo := CalcularCostoEvento(evento)
	assert.True(t, costo.CostoTotal.IsZero())
	assert.Empty(t, costo.Ingredientes)
}
