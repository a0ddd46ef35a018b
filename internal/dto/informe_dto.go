package dto

import "github.com/shopspring/decimal"

// InformeFilter is bound from the query string of GET /api/informes/ventas.
type InformeFilter struct {
	FechaDesde string `form:"fechaDesde" validate:"required,datetime=2006-01-02"`
	FechaHasta string `form:"fechaHasta" validate:"required,datetime=2006-01-02"`
	Tipo       string `form:"tipo,default=resumen" validate:"oneof=resumen detallado"`
	Formato    string `form:"formato" validate:"omitempty,oneof=json pdf"`
}

// ProductoVendido is one row of the top-products ranking.
type ProductoVendido struct {
	ProductoID  string          `json:"producto_id"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int             `json:"cantidad"`
	Total       decimal.Decimal `json:"total"`
}

// InformeResumenResponse aggregates all delivered orders in range.
type InformeResumenResponse struct {
	FechaDesde    string            `json:"fecha_desde"`
	FechaHasta    string            `json:"fecha_hasta"`
	TotalPedidos  int64             `json:"total_pedidos"`
	TotalClientes int64             `json:"total_clientes"`
	TotalVentas   decimal.Decimal   `json:"total_ventas"`
	TopProductos  []ProductoVendido `json:"top_productos"`
}

// ProductoClienteDetalle is one product bought by one client in range.
type ProductoClienteDetalle struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       int             `json:"cantidad"`
	Monto          decimal.Decimal `json:"monto"`
	PrecioPromedio decimal.Decimal `json:"precio_promedio"`
	Pedidos        int             `json:"pedidos"` // orders containing this product
}

// PedidoResumenDetalle is one delivered order inside a client drill-down.
type PedidoResumenDetalle struct {
	ID            string          `json:"id"`
	FechaCreacion string          `json:"fecha_creacion"`
	FechaEntrega  string          `json:"fecha_entrega"`
	Total         decimal.Decimal `json:"total"`
	CantidadItems int             `json:"cantidad_items"`
}

// ClienteDetalle groups the per-client drill-down of tipo=detallado.
type ClienteDetalle struct {
	ClienteID       string                   `json:"cliente_id"`
	Nombre          string                   `json:"nombre"`
	CantidadPedidos int                      `json:"cantidad_pedidos"`
	TotalGastado    decimal.Decimal          `json:"total_gastado"`
	Productos       []ProductoClienteDetalle `json:"productos"`
	Pedidos         []PedidoResumenDetalle   `json:"pedidos"`
}

// InformeDetalladoResponse is the tipo=detallado payload.
type InformeDetalladoResponse struct {
	FechaDesde string           `json:"fecha_desde"`
	FechaHasta string           `json:"fecha_hasta"`
	Clientes   []ClienteDetalle `json:"clientes"`
}

// EnviarInformeRequest is the body of POST /api/informes/ventas/email.
type EnviarInformeRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FechaDesde string `json:"fecha_desde" validate:"required,datetime=2006-01-02"`
	FechaHasta string `json:"fecha_hasta" validate:"required,datetime=2006-01-02"`
}
