package model

import (
	"time"

	"github.com/google/uuid"
)

// Console roles.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Usuario is an internal console user.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nombre       string    `gorm:"not null"`
	Rol          string    `gorm:"not null;default:'operador'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
