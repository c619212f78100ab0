package dto

import "github.com/shopspring/decimal"

// Section inputs use Monto so that malformed upstream numbers degrade to zero
// instead of rejecting the whole budget (the recalculator never throws).

type SeccionMenuRequest struct {
	PrecioPorPersona Monto `json:"precio_por_persona"`
	TotalPersonas    int   `json:"total_personas" validate:"min=0"`
	TVAPct           Monto `json:"tva_pct"`
}

type SeccionServicioRequest struct {
	Mozos int   `json:"mozos" validate:"min=0"`
	Horas Monto `json:"horas"`
	// precio_por_hora and tva_pct are accepted for round-trip compatibility
	// with the console forms but always overwritten by the recalculation.
	PrecioPorHora Monto `json:"precio_por_hora"`
	TVAPct        Monto `json:"tva_pct"`
}

type MaterialItemRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Cantidad       Monto  `json:"cantidad"`
	PrecioUnitario Monto  `json:"precio_unitario"`
}

type SeccionMaterialRequest struct {
	Items     []MaterialItemRequest `json:"items" validate:"dive"`
	SeguroPct *Monto                `json:"seguro_pct"`
	TVAPct    Monto                 `json:"tva_pct"`
}

type SeccionEntregaRequest struct {
	CostoEntrega Monto `json:"costo_entrega"`
	CostoReprise Monto `json:"costo_reprise"`
	TVAPct       Monto `json:"tva_pct"`
}

type SeccionBebidasRequest struct {
	PrecioPorPersona Monto `json:"precio_por_persona"`
	TotalPersonas    int   `json:"total_personas" validate:"min=0"`
}

type SeccionDesplazamientoRequest struct {
	DistanciaKm Monto `json:"distancia_km"`
	PrecioPorKm Monto `json:"precio_por_km"`
	TVAPct      Monto `json:"tva_pct"`
}

// GuardarPresupuestoRequest creates or replaces a quote. Nil sections are
// absent from the quote and excluded from the global totals.
type GuardarPresupuestoRequest struct {
	Cliente        string                        `json:"cliente" validate:"required,min=2,max=160"`
	Fecha          *string                       `json:"fecha"`
	Menu           *SeccionMenuRequest           `json:"menu"`
	Servicio       *SeccionServicioRequest       `json:"servicio"`
	Material       *SeccionMaterialRequest       `json:"material"`
	Entrega        *SeccionEntregaRequest        `json:"entrega"`
	Bebidas        *SeccionBebidasRequest        `json:"bebidas"`
	Desplazamiento *SeccionDesplazamientoRequest `json:"desplazamiento"`
	DescuentoPct   Monto                         `json:"descuento_pct"`
}

type SeccionTotalesResponse struct {
	TotalHT  decimal.Decimal `json:"total_ht"`
	TVAPct   decimal.Decimal `json:"tva_pct"`
	TVA      decimal.Decimal `json:"tva"`
	TotalTTC decimal.Decimal `json:"total_ttc"`
}

type PresupuestoResponse struct {
	ID             string                             `json:"id"`
	Cliente        string                             `json:"cliente"`
	Fecha          *string                            `json:"fecha"`
	Secciones      map[string]SeccionTotalesResponse  `json:"secciones"`
	TotalHT        decimal.Decimal                    `json:"total_ht"`
	TotalTVA       decimal.Decimal                    `json:"total_tva"`
	TotalTTC       decimal.Decimal                    `json:"total_ttc"`
	DescuentoPct   decimal.Decimal                    `json:"descuento_pct"`
	MontoDescuento decimal.Decimal                    `json:"monto_descuento"`
	// TotalConDescuento is a display figure only; the stored totals above
	// remain pre-discount.
	TotalConDescuento decimal.Decimal `json:"total_con_descuento"`
}

type PresupuestoListResponse struct {
	Data  []PresupuestoResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type EnviarPresupuestoRequest struct {
	Email string `json:"email" validate:"required,email"`
}
