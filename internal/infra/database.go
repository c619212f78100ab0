package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create or update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() defaults need pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("create pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Producto{},
		&model.ComboIngrediente{},
		&model.Evento{},
		&model.EventoIngrediente{},
		&model.Presupuesto{},
		&model.SeccionMenu{},
		&model.SeccionServicio{},
		&model.SeccionMaterial{},
		&model.MaterialItem{},
		&model.SeccionEntrega{},
		&model.SeccionBebidas{},
		&model.SeccionDesplazamiento{},
		&model.Usuario{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
