package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// EventoRepository is the data access contract for events and their lines.
type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error)
	// FindByIDs returns the requested events fully loaded (lines + products);
	// an empty id list means every stored event.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Evento, error)
	List(ctx context.Context, page, limit int) ([]model.Evento, int64, error)
	Update(ctx context.Context, e *model.Evento) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateIngrediente(ctx context.Context, ing *model.EventoIngrediente) error
	FindIngredienteByID(ctx context.Context, id uuid.UUID) (*model.EventoIngrediente, error)
	UpdateIngrediente(ctx context.Context, ing *model.EventoIngrediente) error
	DeleteIngrediente(ctx context.Context, id uuid.UUID) error
	MaxOrden(ctx context.Context, eventoID uuid.UUID) (int, error)
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository { return &eventoRepo{db: db} }

func (r *eventoRepo) Create(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).
		Preload("Ingredientes", func(db *gorm.DB) *gorm.DB { return db.Order("orden") }).
		Preload("Ingredientes.Producto").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *eventoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Evento, error) {
	q := r.db.WithContext(ctx).
		Preload("Ingredientes", func(db *gorm.DB) *gorm.DB { return db.Order("orden") }).
		Preload("Ingredientes.Producto").
		Order("fecha, created_at")
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	var eventos []model.Evento
	err := q.Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) List(ctx context.Context, page, limit int) ([]model.Evento, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Evento{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var eventos []model.Evento
	err := r.db.WithContext(ctx).
		Preload("Ingredientes", func(db *gorm.DB) *gorm.DB { return db.Order("orden") }).
		Preload("Ingredientes.Producto").
		Order("fecha, created_at").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&eventos).Error
	return eventos, total, err
}

func (r *eventoRepo) Update(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Evento{}, "id = ?", id).Error
}

func (r *eventoRepo) CreateIngrediente(ctx context.Context, ing *model.EventoIngrediente) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *eventoRepo) FindIngredienteByID(ctx context.Context, id uuid.UUID) (*model.EventoIngrediente, error) {
	var ing model.EventoIngrediente
	err := r.db.WithContext(ctx).Preload("Producto").First(&ing, "id = ?", id).Error
	return &ing, err
}

func (r *eventoRepo) UpdateIngrediente(ctx context.Context, ing *model.EventoIngrediente) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *eventoRepo) DeleteIngrediente(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EventoIngrediente{}, "id = ?", id).Error
}

func (r *eventoRepo) MaxOrden(ctx context.Context, eventoID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&model.EventoIngrediente{}).
		Where("evento_id = ?", eventoID).
		Select("MAX(orden)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}
