package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoPago is a payment type. AplicaSaldo decides the settlement branch:
// true → the order total is posted to the client's cuenta corriente and no
// receipt is recorded; false → an immediate receipt (Pago) is cut.
// The column is a MySQL BIT(1); BitBool normalizes its many wire shapes.
type TipoPago struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Nombre      string    `gorm:"not null"`
	AplicaSaldo BitBool   `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the legacy table name.
func (TipoPago) TableName() string { return "tiposdepago" }
