package service

import (
	"context"
	"fmt"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
)

type ZonaService interface {
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ZonaResponse, error)
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearZonaRequest) (*dto.ZonaResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarZonaRequest) (*dto.ZonaResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
}

type zonaService struct {
	repo repository.ZonaRepository
}

func NewZonaService(repo repository.ZonaRepository) ZonaService {
	return &zonaService{repo: repo}
}

func (s *zonaService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ZonaResponse, error) {
	zonas, err := s.repo.List(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZonaResponse, 0, len(zonas))
	for _, z := range zonas {
		out = append(out, dto.ZonaResponse{ID: z.ID.String(), Nombre: z.Nombre})
	}
	return out, nil
}

func (s *zonaService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearZonaRequest) (*dto.ZonaResponse, error) {
	z := model.Zona{ID: uuid.New(), EmpresaID: empresaID, Nombre: req.Nombre}
	if err := s.repo.Create(ctx, &z); err != nil {
		return nil, err
	}
	return &dto.ZonaResponse{ID: z.ID.String(), Nombre: z.Nombre}, nil
}

func (s *zonaService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarZonaRequest) (*dto.ZonaResponse, error) {
	z, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("zona: %w", ErrNotFound)
	}
	z.Nombre = req.Nombre
	if err := s.repo.Update(ctx, z); err != nil {
		return nil, err
	}
	return &dto.ZonaResponse{ID: z.ID.String(), Nombre: z.Nombre}, nil
}

func (s *zonaService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, empresaID, id); err != nil {
		return fmt.Errorf("zona: %w", ErrNotFound)
	}
	return nil
}
