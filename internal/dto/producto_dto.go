package dto

import (
	"github.com/shopspring/decimal"
)

type CrearProductoRequest struct {
	Nombre            string          `json:"nombre" validate:"required,min=2,max=120"`
	Categoria         string          `json:"categoria" validate:"required"`
	UnidadMedida      string          `json:"unidad_medida" validate:"required,oneof=kilogramo unidad porcion"`
	PorcionPorPersona *string         `json:"porcion_por_persona"`
	PrecioPorPorcion  decimal.Decimal `json:"precio_por_porcion" validate:"min=0"`
	EsCombo           bool            `json:"es_combo"`
	Aclaraciones      *string         `json:"aclaraciones"`
}

type ActualizarProductoRequest struct {
	Nombre            *string          `json:"nombre" validate:"omitempty,min=2,max=120"`
	Categoria         *string          `json:"categoria"`
	UnidadMedida      *string          `json:"unidad_medida" validate:"omitempty,oneof=kilogramo unidad porcion"`
	PorcionPorPersona *string          `json:"porcion_por_persona"`
	PrecioPorPorcion  *decimal.Decimal `json:"precio_por_porcion" validate:"omitempty,min=0"`
	Aclaraciones      *string          `json:"aclaraciones"`
}

type ProductoFilter struct {
	Categoria         string `form:"categoria"`
	Busqueda          string `form:"busqueda"`
	SoloCombos        bool   `form:"solo_combos"`
	IncluirInactivos  bool   `form:"incluir_inactivos"`
	Page              int    `form:"page"`
	Limit             int    `form:"limit"`
}

type ProductoResponse struct {
	ID                string          `json:"id"`
	Nombre            string          `json:"nombre"`
	Categoria         string          `json:"categoria"`
	UnidadMedida      string          `json:"unidad_medida"`
	PorcionPorPersona *string         `json:"porcion_por_persona"`
	// PorcionEstandar is the canonical per-guest quantity parsed from the
	// free-text portion description; the UI uses it to prefill event lines.
	PorcionEstandar  decimal.Decimal `json:"porcion_estandar"`
	PrecioPorPorcion decimal.Decimal `json:"precio_por_porcion"`
	EsCombo          bool            `json:"es_combo"`
	Aclaraciones     *string         `json:"aclaraciones"`
	Activo           bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// VincularParteRequest registers one ingredient inside a combo.
type VincularParteRequest struct {
	IngredienteID string `json:"ingrediente_id" validate:"required,uuid"`
	Cantidad      Monto  `json:"cantidad"`
}

type ParteComboResponse struct {
	ID            string          `json:"id"`
	IngredienteID string          `json:"ingrediente_id"`
	Ingrediente   string          `json:"ingrediente"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

type ComboDetalleResponse struct {
	Producto       ProductoResponse     `json:"producto"`
	Partes         []ParteComboResponse `json:"partes"`
	PrecioDerivado decimal.Decimal      `json:"precio_derivado"`
}
