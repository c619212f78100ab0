package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComboIngrediente links a combo product to one constituent ingredient.
// Cantidad is the amount of the ingredient consumed per one unit of the combo,
// in the ingredient's own storage basis (kilograms for mass products).
type ComboIngrediente struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComboID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_combo_ingrediente;not null"`
	IngredienteID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_combo_ingrediente;not null"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(10,4);not null"`

	Combo       *Producto `gorm:"foreignKey:ComboID"`
	Ingrediente *Producto `gorm:"foreignKey:IngredienteID"`
}
