package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order states. The truncated strings come from the original schema and are
// wire constants shared with the front-ends — do not "fix" them.
const (
	EstadoPendiente = "pendient"
	EstadoEntregado = "entregad"
	EstadoAnulado   = "anulado"
)

// Pedido is an order. Estado only ever moves pendient → entregad | anulado;
// there is no transition back. The entregad transition happens exactly once
// and is the only point where the client's saldo and retornables are mutated
// on behalf of this order.
type Pedido struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	EmpresaID uuid.UUID `gorm:"type:char(36);not null;index"`
	ClienteID uuid.UUID `gorm:"type:char(36);not null;index"`
	// VendedorID created the order; RepartidorID delivered it (nil until then).
	VendedorID   uuid.UUID  `gorm:"type:char(36);not null"`
	RepartidorID *uuid.UUID `gorm:"type:char(36)"`
	ZonaID       *uuid.UUID `gorm:"type:char(36);index"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado       string          `gorm:"type:varchar(10);not null;default:'pendient';index"`
	TipoPagoID   *uuid.UUID      `gorm:"type:char(36)"` // set at delivery
	// Saldo is the audit copy of the amount posted to the client's running
	// balance by this order's delivery (0 when a cash receipt was cut instead).
	Saldo         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FechaCreacion time.Time       `gorm:"not null;index"`
	FechaEntrega  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente  *Cliente     `gorm:"foreignKey:ClienteID"`
	TipoPago *TipoPago    `gorm:"foreignKey:TipoPagoID"`
	Items    []PedidoItem `gorm:"foreignKey:PedidoID"`
}

// PedidoItem is an order line. Total freezes precio × cantidad at creation
// time and stays immutable even if the product's price later changes.
type PedidoItem struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	PedidoID   uuid.UUID `gorm:"type:char(36);not null;index"`
	ProductoID uuid.UUID `gorm:"type:char(36);not null;index"`
	Cantidad   int       `gorm:"not null"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName keeps the legacy table name (pedidositems in the source schema).
func (PedidoItem) TableName() string { return "pedidositems" }
