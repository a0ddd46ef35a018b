package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSuscripcion stores a browser Web Push subscription for a salesperson.
// Endpoint is globally unique; re-subscribing the same endpoint upserts.
type PushSuscripcion struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID  uuid.UUID `gorm:"type:char(36);not null;index"`
	VendedorID uuid.UUID `gorm:"type:char(36);not null;index"`
	Endpoint   string    `gorm:"uniqueIndex:idx_push_endpoint,length:255;not null;type:varchar(512)"`
	P256dh     string    `gorm:"not null"`
	Auth       string    `gorm:"not null"`
	CreatedAt  time.Time

	Vendedor *Vendedor `gorm:"foreignKey:VendedorID"`
}

// TableName overrides pluralization (push_suscripcions → push_suscripciones).
func (PushSuscripcion) TableName() string { return "push_suscripciones" }
