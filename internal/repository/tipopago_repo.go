package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipoPagoRepository interface {
	List(ctx context.Context, empresaID uuid.UUID) ([]model.TipoPago, error)
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.TipoPago, error)
	Create(ctx context.Context, t *model.TipoPago) error
	Update(ctx context.Context, t *model.TipoPago) error
	Delete(ctx context.Context, empresaID, id uuid.UUID) error
	// EnUso reports whether any order or payment references the type.
	EnUso(ctx context.Context, id uuid.UUID) (bool, error)
}

type tipoPagoRepo struct{ db *gorm.DB }

func NewTipoPagoRepository(db *gorm.DB) TipoPagoRepository { return &tipoPagoRepo{db: db} }

func (r *tipoPagoRepo) List(ctx context.Context, empresaID uuid.UUID) ([]model.TipoPago, error) {
	var tipos []model.TipoPago
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).Order("nombre").Find(&tipos).Error
	return tipos, err
}

func (r *tipoPagoRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.TipoPago, error) {
	var t model.TipoPago
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoPagoRepo) Create(ctx context.Context, t *model.TipoPago) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoPagoRepo) Update(ctx context.Context, t *model.TipoPago) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoPagoRepo) Delete(ctx context.Context, empresaID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).Delete(&model.TipoPago{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tipoPagoRepo) EnUso(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("tipo_pago_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Where("tipo_pago_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
