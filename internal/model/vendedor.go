package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendedor is a salesperson / delivery driver. Login is by Telegram id plus
// the company code, verified against a bcrypt PIN hash.
type Vendedor struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID  uuid.UUID `gorm:"type:char(36);not null;index:idx_vendedores_empresa_telegram,unique"`
	TelegramID string    `gorm:"not null;index:idx_vendedores_empresa_telegram,unique"`
	Nombre     string    `gorm:"not null"`
	PinHash    string    `gorm:"not null"`
	Activo     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default pluralization (vendedors → vendedores).
func (Vendedor) TableName() string { return "vendedores" }
