package repository

import (
	"context"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	List(ctx context.Context, empresaID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, error)
	FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Producto, error)
	Create(ctx context.Context, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
	SetActivo(ctx context.Context, empresaID, id uuid.UUID, activo bool) error
	// DescontarStockTx decrements stock by cantidad. Stock may go negative —
	// over-selling is an advisory condition, not an error.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) List(ctx context.Context, empresaID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if !filter.IncluirInactivos {
		q = q.Where("activo = ?", true)
	}
	if filter.Busqueda != "" {
		q = q.Where("descripcion LIKE ?", "%"+filter.Busqueda+"%")
	}
	err := q.Order("descripcion").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(ctx context.Context, empresaID, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SetActivo(ctx context.Context, empresaID, id uuid.UUID, activo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("empresa_id = ? AND id = ?", empresaID, id).
		Update("activo", activo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", cantidad)).Error
}
