package dto

import "github.com/shopspring/decimal"

type PagoFilter struct {
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	PedidoID  string `form:"pedido_id" validate:"omitempty,uuid"`
	Fecha     string `form:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// CrearPagoRequest records an order-tied receipt.
type CrearPagoRequest struct {
	PedidoID   string          `json:"pedido_id" validate:"required,uuid"`
	TipoPagoID string          `json:"tipo_pago_id" validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto" validate:"required"`
	Notas      string          `json:"notas"`
}

// PagoClienteRequest is a direct payment against the client's cuenta
// corriente, independent of any order. RetornablesDevueltos optionally
// adjusts container debt in the same transaction.
type PagoClienteRequest struct {
	ClienteID            string          `json:"cliente_id" validate:"required,uuid"`
	TipoPagoID           string          `json:"tipo_pago_id" validate:"required,uuid"`
	Monto                decimal.Decimal `json:"monto" validate:"required"`
	RetornablesDevueltos int             `json:"retornables_devueltos"`
	Notas                string          `json:"notas"`
}

type ActualizarPagoRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"required"`
	Notas string          `json:"notas"`
}

type PagoResponse struct {
	ID         string          `json:"id"`
	PedidoID   *string         `json:"pedido_id"`
	ClienteID  string          `json:"cliente_id"`
	Cliente    string          `json:"cliente,omitempty"`
	VendedorID string          `json:"vendedor_id"`
	TipoPagoID string          `json:"tipo_pago_id"`
	TipoPago   string          `json:"tipo_pago,omitempty"`
	Monto      decimal.Decimal `json:"monto"`
	Notas      string          `json:"notas"`
	CreatedAt  string          `json:"created_at"`
}
