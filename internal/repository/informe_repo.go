package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row types scanned straight out of the aggregate queries. The reporting
// layer is purely declarative SQL over delivered orders — no caching, every
// call recomputes.

type ResumenRow struct {
	TotalPedidos  int64
	TotalClientes int64
	TotalVentas   decimal.Decimal
}

type TopProductoRow struct {
	ProductoID  string
	Descripcion string
	Cantidad    int
	Total       decimal.Decimal
}

type ClienteVentasRow struct {
	ClienteID       string
	Nombre          string
	CantidadPedidos int
	TotalGastado    decimal.Decimal
}

type ProductoClienteRow struct {
	Descripcion string
	Cantidad    int
	Monto       decimal.Decimal
	Pedidos     int
}

type PedidoClienteRow struct {
	ID            string
	FechaCreacion string
	FechaEntrega  string
	Total         decimal.Decimal
	CantidadItems int
}

type InformeRepository interface {
	Resumen(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*ResumenRow, error)
	TopProductos(ctx context.Context, empresaID uuid.UUID, desde, hasta string, limit int) ([]TopProductoRow, error)
	ClientesConEntregas(ctx context.Context, empresaID uuid.UUID, desde, hasta string) ([]ClienteVentasRow, error)
	ProductosPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID, desde, hasta string) ([]ProductoClienteRow, error)
	PedidosPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID, desde, hasta string) ([]PedidoClienteRow, error)
}

type informeRepo struct{ db *gorm.DB }

func NewInformeRepository(db *gorm.DB) InformeRepository { return &informeRepo{db: db} }

// entregadRange is the shared WHERE fragment: delivered orders of one tenant
// whose delivery date falls inside [desde, hasta].
const entregadRange = `p.empresa_id = ? AND p.estado = 'entregad' AND DATE(p.fecha_entrega) BETWEEN ? AND ?`

func (r *informeRepo) Resumen(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*ResumenRow, error) {
	var row ResumenRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT p.id)            AS total_pedidos,
		       COUNT(DISTINCT p.cliente_id)    AS total_clientes,
		       COALESCE(SUM(p.total), 0)       AS total_ventas
		FROM pedidos p
		WHERE `+entregadRange, empresaID, desde, hasta).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *informeRepo) TopProductos(ctx context.Context, empresaID uuid.UUID, desde, hasta string, limit int) ([]TopProductoRow, error) {
	var rows []TopProductoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pr.id                AS producto_id,
		       pr.descripcion       AS descripcion,
		       SUM(i.cantidad)      AS cantidad,
		       SUM(i.total)         AS total
		FROM pedidositems i
		JOIN pedidos p   ON p.id = i.pedido_id
		JOIN productos pr ON pr.id = i.producto_id
		WHERE `+entregadRange+`
		GROUP BY pr.id, pr.descripcion
		ORDER BY cantidad DESC
		LIMIT ?`, empresaID, desde, hasta, limit).Scan(&rows).Error
	return rows, err
}

func (r *informeRepo) ClientesConEntregas(ctx context.Context, empresaID uuid.UUID, desde, hasta string) ([]ClienteVentasRow, error) {
	var rows []ClienteVentasRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id                 AS cliente_id,
		       c.nombre             AS nombre,
		       COUNT(p.id)          AS cantidad_pedidos,
		       COALESCE(SUM(p.total), 0) AS total_gastado
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		WHERE `+entregadRange+`
		GROUP BY c.id, c.nombre
		ORDER BY total_gastado DESC`, empresaID, desde, hasta).Scan(&rows).Error
	return rows, err
}

func (r *informeRepo) ProductosPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID, desde, hasta string) ([]ProductoClienteRow, error) {
	var rows []ProductoClienteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pr.descripcion            AS descripcion,
		       SUM(i.cantidad)           AS cantidad,
		       SUM(i.total)              AS monto,
		       COUNT(DISTINCT p.id)      AS pedidos
		FROM pedidositems i
		JOIN pedidos p    ON p.id = i.pedido_id
		JOIN productos pr ON pr.id = i.producto_id
		WHERE `+entregadRange+` AND p.cliente_id = ?
		GROUP BY pr.id, pr.descripcion
		ORDER BY monto DESC`, empresaID, desde, hasta, clienteID).Scan(&rows).Error
	return rows, err
}

func (r *informeRepo) PedidosPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID, desde, hasta string) ([]PedidoClienteRow, error) {
	var rows []PedidoClienteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id                                    AS id,
		       DATE_FORMAT(p.fecha_creacion, '%Y-%m-%d') AS fecha_creacion,
		       DATE_FORMAT(p.fecha_entrega, '%Y-%m-%d')  AS fecha_entrega,
		       p.total                                 AS total,
		       (SELECT COUNT(*) FROM pedidositems i WHERE i.pedido_id = p.id) AS cantidad_items
		FROM pedidos p
		WHERE `+entregadRange+` AND p.cliente_id = ?
		ORDER BY p.fecha_entrega DESC`, empresaID, desde, hasta, clienteID).Scan(&rows).Error
	return rows, err
}
