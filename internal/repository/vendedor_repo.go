package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendedorRepository interface {
	FindByTelegramID(ctx context.Context, empresaID uuid.UUID, telegramID string) (*model.Vendedor, error)
	Create(ctx context.Context, v *model.Vendedor) error
}

type EmpresaRepository interface {
	FindByCodigo(ctx context.Context, codigo string) (*model.Empresa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	Create(ctx context.Context, e *model.Empresa) error
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) FindByTelegramID(ctx context.Context, empresaID uuid.UUID, telegramID string) (*model.Vendedor, error) {
	var v model.Vendedor
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND telegram_id = ? AND activo = ?", empresaID, telegramID, true).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendedorRepo) Create(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) Create(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}
