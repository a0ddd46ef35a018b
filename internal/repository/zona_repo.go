package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ZonaRepository interface {
	List(ctx context.Context, empresaID uuid.UUID) ([]model.Zona, error)
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Zona, error)
	Create(ctx context.Context, z *model.Zona) error
	Update(ctx context.Context, z *model.Zona) error
	Delete(ctx context.Context, empresaID, id uuid.UUID) error
}

type zonaRepo struct{ db *gorm.DB }

func NewZonaRepository(db *gorm.DB) ZonaRepository { return &zonaRepo{db: db} }

func (r *zonaRepo) List(ctx context.Context, empresaID uuid.UUID) ([]model.Zona, error) {
	var zonas []model.Zona
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).Order("nombre").Find(&zonas).Error
	return zonas, err
}

func (r *zonaRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Zona, error) {
	var z model.Zona
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).First(&z, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *zonaRepo) Create(ctx context.Context, z *model.Zona) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *zonaRepo) Update(ctx context.Context, z *model.Zona) error {
	return r.db.WithContext(ctx).Save(z).Error
}

func (r *zonaRepo) Delete(ctx context.Context, empresaID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).Delete(&model.Zona{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
