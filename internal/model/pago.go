package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago is a payment/receipt record: either tied to an order (conventional
// receipt cut at delivery) or to a client directly (cuenta corriente payment
// or adjustment, PedidoID nil).
type Pago struct {
	ID         uuid.UUID  `gorm:"type:char(36);primaryKey"`
	EmpresaID  uuid.UUID  `gorm:"type:char(36);not null;index"`
	PedidoID   *uuid.UUID `gorm:"type:char(36);index"`
	ClienteID  uuid.UUID  `gorm:"type:char(36);not null;index"`
	VendedorID uuid.UUID  `gorm:"type:char(36);not null"`
	TipoPagoID uuid.UUID  `gorm:"type:char(36);not null"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notas      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	TipoPago *TipoPago `gorm:"foreignKey:TipoPagoID"`
}
