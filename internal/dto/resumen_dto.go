package dto

import "github.com/shopspring/decimal"

// ResumenRequest selects the events to fold into one purchasing summary.
// Empty means every stored event.
type ResumenRequest struct {
	EventoIDs []string `json:"evento_ids" validate:"omitempty,dive,uuid"`
}

type TotalIngredienteResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Categoria  string          `json:"categoria"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Unidad     string          `json:"unidad"`
}

type ResumenResponse struct {
	Eventos      int                                   `json:"eventos"`
	Totales      []TotalIngredienteResponse            `json:"totales"`
	PorCategoria map[string][]TotalIngredienteResponse `json:"por_categoria"`
}

type GenerarListaComprasRequest struct {
	EventoIDs []string `json:"evento_ids" validate:"omitempty,dive,uuid"`
}

type ListaComprasResponse struct {
	Encolado bool   `json:"encolado"`
	Detalle  string `json:"detalle"`
}
