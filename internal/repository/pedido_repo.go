package repository

import (
	"context"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, empresaID uuid.UUID, filter dto.PedidoFilter) ([]model.Pedido, error)
	ListItems(ctx context.Context, empresaID, pedidoID uuid.UUID) ([]model.PedidoItem, error)
	// MarcarEntregadoTx flips the order to entregad, re-checking the pendient
	// precondition in the UPDATE itself. Returns the number of rows updated:
	// 0 means another settlement won the race and nothing changed.
	MarcarEntregadoTx(tx *gorm.DB, empresaID, id, repartidorID, tipoPagoID uuid.UUID, saldo decimal.Decimal, fecha time.Time) (int64, error)
	// CambiarEstadoTx handles non-delivery transitions; same pendient guard.
	CambiarEstadoTx(tx *gorm.DB, empresaID, id, repartidorID uuid.UUID, estado string) (int64, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Cliente").Preload("TipoPago").
		Where("empresa_id = ?", empresaID).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, empresaID uuid.UUID, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	q := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("pedidos.empresa_id = ?", empresaID)

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("pedidos.estado = ?", filter.Estado)
	}
	if filter.ClienteID != "" {
		q = q.Where("pedidos.cliente_id = ?", filter.ClienteID)
	}
	if filter.ZonaID != "" {
		q = q.Where("pedidos.zona_id = ?", filter.ZonaID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(pedidos.fecha_creacion) = ?", filter.Fecha)
	}
	if filter.Busqueda != "" {
		q = q.Joins("JOIN clientes ON clientes.id = pedidos.cliente_id").
			Where("clientes.nombre LIKE ?", "%"+filter.Busqueda+"%")
	}

	err := q.Preload("Cliente").Preload("Items").
		Order("pedidos.fecha_creacion DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListItems(ctx context.Context, empresaID, pedidoID uuid.UUID) ([]model.PedidoItem, error) {
	// Verify tenant ownership through the order header first.
	var p model.Pedido
	if err := r.db.WithContext(ctx).Select("id").
		Where("empresa_id = ?", empresaID).First(&p, "id = ?", pedidoID).Error; err != nil {
		return nil, err
	}
	var items []model.PedidoItem
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("pedido_id = ?", pedidoID).Find(&items).Error
	return items, err
}

func (r *pedidoRepo) MarcarEntregadoTx(tx *gorm.DB, empresaID, id, repartidorID, tipoPagoID uuid.UUID, saldo decimal.Decimal, fecha time.Time) (int64, error) {
	res := tx.Model(&model.Pedido{}).
		Where("empresa_id = ? AND id = ? AND estado = ?", empresaID, id, model.EstadoPendiente).
		Updates(map[string]any{
			"estado":        model.EstadoEntregado,
			"repartidor_id": repartidorID,
			"tipo_pago_id":  tipoPagoID,
			"saldo":         saldo,
			"fecha_entrega": fecha,
		})
	return res.RowsAffected, res.Error
}

func (r *pedidoRepo) CambiarEstadoTx(tx *gorm.DB, empresaID, id, repartidorID uuid.UUID, estado string) (int64, error) {
	res := tx.Model(&model.Pedido{}).
		Where("empresa_id = ? AND id = ? AND estado = ?", empresaID, id, model.EstadoPendiente).
		Updates(map[string]any{
			"estado":        estado,
			"repartidor_id": repartidorID,
		})
	return res.RowsAffected, res.Error
}
