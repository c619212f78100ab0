package dto

import (
	"github.com/shopspring/decimal"
)

type CrearEventoRequest struct {
	Nombre            string  `json:"nombre" validate:"required,min=2,max=160"`
	Fecha             *string `json:"fecha"` // "2006-01-02"
	CantidadInvitados int     `json:"cantidad_invitados" validate:"min=0"`
	Notas             *string `json:"notas"`
}

type ActualizarEventoRequest struct {
	Nombre            *string `json:"nombre" validate:"omitempty,min=2,max=160"`
	Fecha             *string `json:"fecha"`
	CantidadInvitados *int    `json:"cantidad_invitados" validate:"omitempty,min=0"`
	Notas             *string `json:"notas"`
}

// AgregarIngredienteRequest adds a product line to an event. When Valor is
// nil the per-person quantity comes from the catalog's portion text.
type AgregarIngredienteRequest struct {
	ProductoID   string  `json:"producto_id" validate:"required,uuid"`
	Valor        *Monto  `json:"valor"`
	Unidad       *string `json:"unidad" validate:"omitempty,oneof=kg gr unidad"`
	CantidadFija bool    `json:"cantidad_fija"`
	Notas        *string `json:"notas"`
}

type ActualizarIngredienteRequest struct {
	Valor        Monto   `json:"valor"`
	Unidad       string  `json:"unidad" validate:"required,oneof=kg gr unidad"`
	CantidadFija *bool   `json:"cantidad_fija"`
	Notas        *string `json:"notas"`
}

type IngredienteResponse struct {
	ID           string          `json:"id"`
	ProductoID   string          `json:"producto_id"`
	Producto     string          `json:"producto"`
	Categoria    string          `json:"categoria"`
	// Display-ready value and unit for the editable per-line figure.
	Valor        decimal.Decimal `json:"valor"`
	Unidad       string          `json:"unidad"`
	CantidadFija bool            `json:"cantidad_fija"`
	// EsPorcionEstandar signals that the quantity still matches the catalog
	// default, enabling the "reset to standard" affordance in the console.
	EsPorcionEstandar bool    `json:"es_porcion_estandar"`
	Notas             *string `json:"notas"`
}

type EventoResponse struct {
	ID                string                `json:"id"`
	Nombre            string                `json:"nombre"`
	Fecha             *string               `json:"fecha"`
	CantidadInvitados int                   `json:"cantidad_invitados"`
	Notas             *string               `json:"notas"`
	Ingredientes      []IngredienteResponse `json:"ingredientes"`
}

type EventoListResponse struct {
	Data  []EventoResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type CostoIngredienteResponse struct {
	ProductoID    string          `json:"producto_id"`
	Producto      string          `json:"producto"`
	Categoria     string          `json:"categoria"`
	CantidadTotal decimal.Decimal `json:"cantidad_total"`
	Unidad        string          `json:"unidad"`
	Costo         decimal.Decimal `json:"costo"`
}

type CostoEventoResponse struct {
	EventoID         string                     `json:"evento_id"`
	CostoTotal       decimal.Decimal            `json:"costo_total"`
	CostoPorInvitado decimal.Decimal            `json:"costo_por_invitado"`
	Ingredientes     []CostoIngredienteResponse `json:"ingredientes"`
	PorCategoria     map[string]decimal.Decimal `json:"por_categoria"`
}
