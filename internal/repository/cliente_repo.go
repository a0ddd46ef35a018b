package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	List(ctx context.Context, empresaID uuid.UUID, filter dto.ClienteFilter) ([]model.Cliente, error)
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, c *model.Cliente) error
	// AjustarSaldoTx adds delta (signed) to the client's running balance.
	AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
	// AjustarRetornablesTx adds delta (signed) to the client's container debt.
	AjustarRetornablesTx(tx *gorm.DB, id uuid.UUID, delta int) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) List(ctx context.Context, empresaID uuid.UUID, filter dto.ClienteFilter) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if filter.Busqueda != "" {
		q = q.Where("nombre LIKE ?", "%"+filter.Busqueda+"%")
	}
	if filter.ZonaID != "" {
		q = q.Where("zona_id = ?", filter.ZonaID)
	}
	err := q.Preload("Zona").Order("nombre").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Zona").
		Where("empresa_id = ?", empresaID).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).
		Update("saldo", gorm.Expr("saldo + ?", delta)).Error
}

func (r *clienteRepo) AjustarRetornablesTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).
		Update("retornables", gorm.Expr("retornables + ?", delta)).Error
}
