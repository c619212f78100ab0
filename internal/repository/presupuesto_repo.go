package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// PresupuestoRepository persists quotes with their full section graph.
type PresupuestoRepository interface {
	Create(ctx context.Context, p *model.Presupuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error)
	List(ctx context.Context, page, limit int) ([]model.Presupuesto, int64, error)
	// Replace overwrites the stored quote with the given recalculated record,
	// replacing every section row.
	Replace(ctx context.Context, p *model.Presupuesto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type presupuestoRepo struct{ db *gorm.DB }

func NewPresupuestoRepository(db *gorm.DB) PresupuestoRepository { return &presupuestoRepo{db: db} }

var preloadsPresupuesto = []string{
	"Menu", "Servicio", "Material", "Material.Items", "Entrega", "Bebidas", "Desplazamiento",
}

func conSecciones(db *gorm.DB) *gorm.DB {
	for _, p := range preloadsPresupuesto {
		db = db.Preload(p)
	}
	return db
}

func (r *presupuestoRepo) Create(ctx context.Context, p *model.Presupuesto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presupuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error) {
	var p model.Presupuesto
	err := conSecciones(r.db.WithContext(ctx)).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *presupuestoRepo) List(ctx context.Context, page, limit int) ([]model.Presupuesto, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Presupuesto{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var presupuestos []model.Presupuesto
	err := conSecciones(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&presupuestos).Error
	return presupuestos, total, err
}

func (r *presupuestoRepo) Replace(ctx context.Context, p *model.Presupuesto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Section rows are replaced wholesale; recalculation regenerated them.
		for _, seccion := range []interface{}{
			&model.SeccionMenu{}, &model.SeccionServicio{}, &model.SeccionMaterial{},
			&model.SeccionEntrega{}, &model.SeccionBebidas{}, &model.SeccionDesplazamiento{},
		} {
			if err := tx.Where("presupuesto_id = ?", p.ID).Delete(seccion).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

func (r *presupuestoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Presupuesto{}, "id = ?", id).Error
}
