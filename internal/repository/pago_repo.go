package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pago) error
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Pago, error)
	List(ctx context.Context, empresaID uuid.UUID, filter dto.PagoFilter) ([]model.Pago, error)
	Update(ctx context.Context, p *model.Pago) error
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).Preload("Cliente").Preload("TipoPago").
		Where("empresa_id = ?", empresaID).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pagoRepo) List(ctx context.Context, empresaID uuid.UUID, filter dto.PagoFilter) ([]model.Pago, error) {
	var pagos []model.Pago
	q := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.PedidoID != "" {
		q = q.Where("pedido_id = ?", filter.PedidoID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}
	err := q.Preload("Cliente").Preload("TipoPago").
		Order("created_at DESC").Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) Update(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Save(p).Error
}
