package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed catalog categories. Stored as plain strings; consumers use the value
// directly as a display label.
const (
	CategoriaEntradas       = "entradas"
	CategoriaCarnesClasicas = "carnes_clasicas"
	CategoriaCarnesPremium  = "carnes_premium"
	CategoriaVerduras       = "verduras"
	CategoriaPostres        = "postres"
	CategoriaPan            = "pan"
	CategoriaExtras         = "extras"
	CategoriaMaterial       = "material"

	// CategoriaSinAsignar buckets products saved without a category.
	// Aggregation must never key totals on an empty string.
	CategoriaSinAsignar = "sin_categoria"
)

// Unit basis in which a product's stored quantity is expressed.
// Mass products are stored in kilograms regardless of how they are displayed.
const (
	UnidadMedidaKilogramo = "kilogramo"
	UnidadMedidaUnidad    = "unidad"
	UnidadMedidaPorcion   = "porcion"
)

// Producto is a catalog entry. PrecioPorPorcion is the price per one unit of
// the stored quantity basis: per kilogram for mass products, per unit/portion
// otherwise. Combos are never priced directly — their price derives from the
// linked ingredients (see ComboIngrediente).
type Producto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"index;not null"`
	Categoria    string    `gorm:"index;not null"`
	UnidadMedida string    `gorm:"not null;default:'kilogramo'"`
	// PorcionPorPersona is free text from the catalog ("30 gr", "1/4", "1 feta").
	// calc.ParsearPorcion is the single interpreter of this field.
	PorcionPorPersona *string
	PrecioPorPorcion  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EsCombo           bool            `gorm:"not null;default:false"`
	Aclaraciones      *string
	Activo            bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CategoriaODefecto returns the product category, falling back to the
// sin_categoria sentinel for missing products or empty categories.
func CategoriaODefecto(p *Producto) string {
	if p == nil || p.Categoria == "" {
		return CategoriaSinAsignar
	}
	return p.Categoria
}
