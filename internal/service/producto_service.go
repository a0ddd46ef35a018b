package service

import (
	"context"
	"fmt"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Listar(ctx context.Context, empresaID uuid.UUID, filter dto.ProductoFilter) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, empresaID, id uuid.UUID) error
	Reactivar(ctx context.Context, empresaID, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context, empresaID uuid.UUID, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, empresaID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("producto: %w", ErrNotFound)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := model.Producto{
		ID:           uuid.New(),
		EmpresaID:    empresaID,
		Descripcion:  req.Descripcion,
		Precio:       req.Precio,
		Stock:        req.Stock,
		EsRetornable: req.EsRetornable,
		Activo:       true,
		ImagenURL:    req.ImagenURL,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

func (s *productoService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("producto: %w", ErrNotFound)
	}
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.EsRetornable != nil {
		p.EsRetornable = *req.EsRetornable
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, empresaID, id uuid.UUID) error {
	if err := s.repo.SetActivo(ctx, empresaID, id, false); err != nil {
		return fmt.Errorf("producto: %w", ErrNotFound)
	}
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, empresaID, id uuid.UUID) error {
	if err := s.repo.SetActivo(ctx, empresaID, id, true); err != nil {
		return fmt.Errorf("producto: %w", ErrNotFound)
	}
	return nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID.String(),
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Stock:        p.Stock,
		EsRetornable: p.EsRetornable,
		Activo:       p.Activo,
		ImagenURL:    p.ImagenURL,
	}
}
