package model

import (
	"time"

	"github.com/google/uuid"
)

// Zona is a delivery zone, used only as a grouping/filter attribute on
// clients and orders.
type Zona struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID uuid.UUID `gorm:"type:char(36);not null;index"`
	Nombre    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
