package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a delivery customer.
//
// Saldo is the running balance (cuenta corriente): positive = the client owes
// money, negative = the client is in credit. Retornables counts returnable
// containers the client owes back; it is signed too — a negative value means
// the business owes containers to the client. Both are mutated only by the
// settlement workflow and by direct payments/adjustments. Clients are never
// deleted, only deactivated.
type Cliente struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey"`
	EmpresaID   uuid.UUID  `gorm:"type:char(36);not null;index"`
	Nombre      string     `gorm:"index;not null"`
	Telefono    string
	Direccion   string
	ZonaID      *uuid.UUID      `gorm:"type:char(36);index"`
	Saldo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Retornables int             `gorm:"not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Zona *Zona `gorm:"foreignKey:ZonaID"`
}
