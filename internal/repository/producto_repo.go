package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// ProductoRepository is the data access contract for the catalog, including
// combo→ingredient links. Services depend on this interface, not on GORM,
// so unit tests can swap in in-memory stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Combo links
	CreateParte(ctx context.Context, parte *model.ComboIngrediente) error
	DeleteParte(ctx context.Context, id uuid.UUID) error
	FindPartesByComboID(ctx context.Context, comboID uuid.UUID) ([]model.ComboIngrediente, error)
	// FindPartesDeCombos loads the constituents of every combo at once,
	// keyed by combo id — the aggregator's lookup table.
	FindPartesDeCombos(ctx context.Context) (map[uuid.UUID][]model.ComboIngrediente, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if !filter.IncluirInactivos {
		q = q.Where("activo = true")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.SoloCombos {
		q = q.Where("es_combo = true")
	}
	if filter.Busqueda != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Busqueda+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productos []model.Producto
	err := q.Order("categoria, nombre").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).Update("activo", true).Error
}

func (r *productoRepo) CreateParte(ctx context.Context, parte *model.ComboIngrediente) error {
	return r.db.WithContext(ctx).Create(parte).Error
}

func (r *productoRepo) DeleteParte(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ComboIngrediente{}, "id = ?", id).Error
}

func (r *productoRepo) FindPartesByComboID(ctx context.Context, comboID uuid.UUID) ([]model.ComboIngrediente, error) {
	var partes []model.ComboIngrediente
	err := r.db.WithContext(ctx).
		Preload("Ingrediente").
		Where("combo_id = ?", comboID).
		Find(&partes).Error
	return partes, err
}

func (r *productoRepo) FindPartesDeCombos(ctx context.Context) (map[uuid.UUID][]model.ComboIngrediente, error) {
	var partes []model.ComboIngrediente
	if err := r.db.WithContext(ctx).Preload("Ingrediente").Find(&partes).Error; err != nil {
		return nil, err
	}
	porCombo := make(map[uuid.UUID][]model.ComboIngrediente, len(partes))
	for _, parte := range partes {
		porCombo[parte.ComboID] = append(porCombo[parte.ComboID], parte)
	}
	return porCombo, nil
}
