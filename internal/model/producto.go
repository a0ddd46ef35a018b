package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a sellable item (bidón, dispenser, soda, …).
//
// Stock may legitimately go negative: order creation decrements it and emits
// a warning instead of failing when the quantity exceeds availability.
// EsRetornable marks products whose container the client must return.
type Producto struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Descripcion  string    `gorm:"index;not null"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock        int             `gorm:"not null;default:0"`
	EsRetornable bool            `gorm:"not null;default:false"`
	Activo       bool            `gorm:"not null;default:true"`
	ImagenURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
