package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PushRepository interface {
	Upsert(ctx context.Context, s *model.PushSuscripcion) error
	DeleteByEndpoint(ctx context.Context, empresaID uuid.UUID, endpoint string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.PushSuscripcion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.PushSuscripcion, error)
	Count(ctx context.Context, empresaID uuid.UUID) (int64, error)
}

type pushRepo struct{ db *gorm.DB }

func NewPushRepository(db *gorm.DB) PushRepository { return &pushRepo{db: db} }

// Upsert keys on the endpoint: re-subscribing refreshes the keys and owner.
func (r *pushRepo) Upsert(ctx context.Context, s *model.PushSuscripcion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"empresa_id", "vendedor_id", "p256dh", "auth"}),
	}).Create(s).Error
}

func (r *pushRepo) DeleteByEndpoint(ctx context.Context, empresaID uuid.UUID, endpoint string) error {
	res := r.db.WithContext(ctx).
		Where("empresa_id = ? AND endpoint = ?", empresaID, endpoint).
		Delete(&model.PushSuscripcion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pushRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PushSuscripcion{}, "id = ?", id).Error
}

func (r *pushRepo) ListByEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.PushSuscripcion, error) {
	var subs []model.PushSuscripcion
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).Find(&subs).Error
	return subs, err
}

func (r *pushRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PushSuscripcion, error) {
	var s model.PushSuscripcion
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *pushRepo) Count(ctx context.Context, empresaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PushSuscripcion{}).
		Where("empresa_id = ?", empresaID).Count(&count).Error
	return count, err
}
