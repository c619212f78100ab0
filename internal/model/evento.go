package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evento is a catering occasion: a guest count plus an ordered ingredient list.
type Evento struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre            string    `gorm:"not null"`
	Fecha             *time.Time
	CantidadInvitados int    `gorm:"not null;default:0"`
	Notas             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Ingredientes []EventoIngrediente `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE"`
}

// EventoIngrediente is one line of an event.
// CantidadPorPersona is stored in the product's quantity basis (kilograms for
// mass products). When CantidadFija is set the amount is a flat per-event
// total and is not scaled by the guest count — used for material/equipment.
type EventoIngrediente struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventoID           uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductoID         uuid.UUID `gorm:"type:uuid;not null"`
	CantidadPorPersona decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	CantidadFija       bool            `gorm:"not null;default:false"`
	Notas              *string
	Orden              int `gorm:"not null;default:0"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}
