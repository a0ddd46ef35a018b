package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is the tenant: every domain row carries an EmpresaID and every
// query is scoped by it.
type Empresa struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Codigo    string    `gorm:"uniqueIndex;not null"` // short code used at login
	Nombre    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
