package calc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

func nuevoCombo(nombre string) *model.Producto {
	return &model.Producto{ID: uuid.New(), Nombre: nombre, Categoria: model.CategoriaExtras, UnidadMedida: model.UnidadMedidaPorcion, EsCombo: true}
}

func nuevoIngrediente(nombre string, precio float64) *model.Producto {
	return &model.Producto{ID: uuid.New(), Nombre: nombre, Categoria: model.CategoriaCarnesClasicas, UnidadMedida: model.UnidadMedidaKilogramo, PrecioPorPorcion: decimal.NewFromFloat(precio)}
}

func partesFijas(m map[uuid.UUID][]model.ComboIngrediente) PartesPorCombo {
	return func(id uuid.UUID) []model.ComboIngrediente { return m[id] }
}

func TestExpandirCombo_EscalaConstituyentes(t *testing.T) {
	combo := nuevoCombo("Tabla fuegos")
	a := nuevoIngrediente("Bife", 20)
	b := nuevoIngrediente("Chorizo", 8)

	partes := partesFijas(map[uuid.UUID][]model.ComboIngrediente{
		combo.ID: {
			{ComboID: combo.ID, Ingrediente: a, Cantidad: decimal.NewFromInt(2)},
			{ComboID: combo.ID, Ingrediente: b, Cantidad: decimal.NewFromInt(1)},
		},
	})

	resultado := ExpandirCombo(combo, decimal.NewFromInt(3), partes)
	require.Len(t, resultado, 2)
	assert.Equal(t, a.ID, resultado[0].Producto.ID)
	assert.Equal(t, "6", resultado[0].Cantidad.String())
	assert.Equal(t, b.ID, resultado[1].Producto.ID)
	assert.Equal(t, "3", resultado[1].Cantidad.String())
}

// A combo with no registered constituents behaves as a plain leaf.
func TestExpandirCombo_SinPartesRegistradas(t *testing.T) {
	combo := nuevoCombo("Combo nuevo")
	resultado := ExpandirCombo(combo, decimal.NewFromInt(5), partesFijas(nil))
	require.Len(t, resultado, 1)
	assert.Equal(t, combo.ID, resultado[0].Producto.ID)
	assert.Equal(t, "5", resultado[0].Cantidad.String())
}

func TestExpandirCombo_IngredienteFaltanteSeOmite(t *testing.T) {
	combo := nuevoCombo("Tabla")
	a := nuevoIngrediente("Bife", 20)
	partes := partesFijas(map[uuid.UUID][]model.ComboIngrediente{
		combo.ID: {
			{ComboID: combo.ID, Ingrediente: a, Cantidad: decimal.NewFromInt(1)},
			{ComboID: combo.ID, Ingrediente: nil, Cantidad: decimal.NewFromInt(9)},
		},
	})
	resultado := ExpandirCombo(combo, uno, partes)
	require.Len(t, resultado, 1)
	assert.Equal(t, a.ID, resultado[0].Producto.ID)
}

// A self-referencing combo must terminate instead of recursing forever.
func TestExpandirCombo_CicloSeCorta(t *testing.T) {
	combo := nuevoCombo("Ciclico")
	partes := partesFijas(map[uuid.UUID][]model.ComboIngrediente{
		combo.ID: {{ComboID: combo.ID, Ingrediente: combo, Cantidad: decimal.NewFromInt(1)}},
	})
	resultado := ExpandirCombo(combo, uno, partes)
	require.Len(t, resultado, 1)
	assert.Equal(t, combo.ID, resultado[0].Producto.ID)
}

func TestPrecioCombo_SumaDeConstituyentes(t *testing.T) {
	combo := nuevoCombo("Tabla")
	a := nuevoIngrediente("Bife", 20)
	b := nuevoIngrediente("Chorizo", 8)
	partes := []model.ComboIngrediente{
		{ComboID: combo.ID, Ingrediente: a, Cantidad: decimal.NewFromFloat(0.5)},
		{ComboID: combo.ID, Ingrediente: b, Cantidad: decimal.NewFromInt(2)},
	}
	// 20×0.5 + 8×2 = 26
	assert.Equal(t, "26", PrecioCombo(partes).String())
}
