package dto

import "github.com/shopspring/decimal"

// PedidoFilter is bound from the query string of GET /api/pedidos.
type PedidoFilter struct {
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Fecha     string `form:"fecha" validate:"omitempty,datetime=2006-01-02"`
	ZonaID    string `form:"zona_id" validate:"omitempty,uuid"`
	Estado    string `form:"estado" validate:"omitempty,oneof=pendient entregad anulado all"`
	Busqueda  string `form:"busqueda"` // client name LIKE search
}

type ItemPedidoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

type CrearPedidoRequest struct {
	ClienteID string              `json:"cliente_id" validate:"required,uuid"`
	ZonaID    *string             `json:"zona_id" validate:"omitempty,uuid"`
	Items     []ItemPedidoRequest `json:"items" validate:"required,min=1,dive"`
}

// CambiarEstadoRequest covers non-delivery transitions (e.g. anulado).
// Delivering an order goes through POST /api/pedidos/:id/entregar instead.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendient anulado"`
}

// EntregarPedidoRequest carries the delivery-settlement inputs.
// MontoCobrado is ignored (zeroed) when the payment type posts to the
// client's running balance. TotalRetornables is the number of returnable
// containers this order carries; RetornablesDevueltos how many the client
// handed back (may exceed TotalRetornables).
type EntregarPedidoRequest struct {
	TipoPagoID           string           `json:"tipo_pago_id" validate:"required,uuid"`
	MontoCobrado         *decimal.Decimal `json:"monto_cobrado"`
	TotalRetornables     int              `json:"total_retornables" validate:"min=0"`
	RetornablesDevueltos int              `json:"retornables_devueltos" validate:"min=0"`
}

type ItemPedidoResponse struct {
	ProductoID  string          `json:"producto_id"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int             `json:"cantidad"`
	Total       decimal.Decimal `json:"total"`
}

type PedidoResponse struct {
	ID            string               `json:"id"`
	ClienteID     string               `json:"cliente_id"`
	Cliente       string               `json:"cliente,omitempty"`
	VendedorID    string               `json:"vendedor_id"`
	RepartidorID  *string              `json:"repartidor_id"`
	ZonaID        *string              `json:"zona_id"`
	Total         decimal.Decimal      `json:"total"`
	Estado        string               `json:"estado"`
	TipoPagoID    *string              `json:"tipo_pago_id"`
	Saldo         decimal.Decimal      `json:"saldo"`
	FechaCreacion string               `json:"fecha_creacion"`
	FechaEntrega  *string              `json:"fecha_entrega"`
	Items         []ItemPedidoResponse `json:"items,omitempty"`
	// Advertencias carries non-fatal conditions from order creation
	// (e.g. stock went negative). Never set on reads.
	Advertencias []string `json:"advertencias,omitempty"`
}
