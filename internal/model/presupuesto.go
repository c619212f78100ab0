package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Presupuesto is a client quote assembled from independent sections.
// Section pointers are nil when the section is absent from the quote; an
// absent section is skipped in the global totals, never counted as zero.
//
// The section names keep the French labels used on the printed quote
// (HT = hors taxes, TVA = tax amount, TTC = toutes taxes comprises).
type Presupuesto struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Cliente string    `gorm:"not null"`
	Fecha   *time.Time

	Menu           *SeccionMenu           `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`
	Servicio       *SeccionServicio       `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`
	Material       *SeccionMaterial       `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`
	Entrega        *SeccionEntrega        `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`
	Bebidas        *SeccionBebidas        `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`
	Desplazamiento *SeccionDesplazamiento `gorm:"foreignKey:PresupuestoID;constraint:OnDelete:CASCADE"`

	// Pre-discount global totals. The discount is carried separately and only
	// applied at display time; it is never folded back into TotalHT/TotalTTC.
	TotalHT        decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTVA       decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC       decimal.Decimal `gorm:"type:decimal(12,2)"`
	DescuentoPct   decimal.Decimal `gorm:"type:decimal(5,2)"`
	MontoDescuento decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeccionMenu — HT = price per person × number of guests.
type SeccionMenu struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PrecioPorPersona decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalPersonas    int
	TVAPct           decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalHT          decimal.Decimal `gorm:"type:decimal(12,2)"`
	TVA              decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC         decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// SeccionServicio — staffing. Rate and VAT are fixed by domain rule (40/h,
// 20%) and re-asserted on every recalculation regardless of stored values.
type SeccionServicio struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Mozos         int
	Horas         decimal.Decimal `gorm:"type:decimal(6,2)"`
	PrecioPorHora decimal.Decimal `gorm:"type:decimal(10,2)"`
	TVAPct        decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalHT       decimal.Decimal `gorm:"type:decimal(12,2)"`
	TVA           decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC      decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// SeccionMaterial — rented equipment. Staffing rows leak into the upstream
// material list and are excluded from the subtotal by name. SeguroPct is the
// insurance surcharge applied to the subtotal before VAT (nil → 6%).
type SeccionMaterial struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	SeguroPct     *decimal.Decimal `gorm:"type:decimal(5,2)"`
	TVAPct        decimal.Decimal  `gorm:"type:decimal(5,2)"`
	TotalHT       decimal.Decimal  `gorm:"type:decimal(12,2)"`
	TVA           decimal.Decimal  `gorm:"type:decimal(12,2)"`
	TotalTTC      decimal.Decimal  `gorm:"type:decimal(12,2)"`

	Items []MaterialItem `gorm:"foreignKey:SeccionID;constraint:OnDelete:CASCADE"`
}

// MaterialItem is one rented line inside the material section.
type MaterialItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SeccionID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Nombre         string    `gorm:"not null"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,2)"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2)"`
}

// SeccionEntrega — delivery plus pickup ("livraison / reprise").
type SeccionEntrega struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CostoEntrega  decimal.Decimal `gorm:"type:decimal(10,2)"`
	CostoReprise  decimal.Decimal `gorm:"type:decimal(10,2)"`
	TVAPct        decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalHT       decimal.Decimal `gorm:"type:decimal(12,2)"`
	TVA           decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC      decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// SeccionBebidas — soft drinks ("boissons soft"). VAT fixed at 20%.
type SeccionBebidas struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PrecioPorPersona decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalPersonas    int
	TVAPct           decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalHT          decimal.Decimal `gorm:"type:decimal(12,2)"`
	TVA              decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC         decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// SeccionDesplazamiento — travel, billed by distance.
type SeccionDesplazamiento struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	DistanciaKm   decimal.Decimal `gorm:"type:decimal(8,2)"`
	PrecioPorKm   decimal.Decimal `gorm:"type:decimal(8,2)"`
	TVAPct        decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalHT       decimal.Decimal `gorm:"type:decimal(12,2)"`
	TVA           decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalTTC      decimal.Decimal `gorm:"type:decimal(12,2)"`
}
