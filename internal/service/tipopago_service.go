package service

import (
	"context"
	"fmt"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
)

type TipoPagoService interface {
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.TipoPagoResponse, error)
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearTipoPagoRequest) (*dto.TipoPagoResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarTipoPagoRequest) (*dto.TipoPagoResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
}

type tipoPagoService struct {
	repo repository.TipoPagoRepository
}

func NewTipoPagoService(repo repository.TipoPagoRepository) TipoPagoService {
	return &tipoPagoService{repo: repo}
}

func (s *tipoPagoService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.TipoPagoResponse, error) {
	tipos, err := s.repo.List(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoPagoResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, *tipoPagoToResponse(&t))
	}
	return out, nil
}

func (s *tipoPagoService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearTipoPagoRequest) (*dto.TipoPagoResponse, error) {
	t := model.TipoPago{
		ID:          uuid.New(),
		EmpresaID:   empresaID,
		Nombre:      req.Nombre,
		AplicaSaldo: req.AplicaSaldo,
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return tipoPagoToResponse(&t), nil
}

func (s *tipoPagoService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarTipoPagoRequest) (*dto.TipoPagoResponse, error) {
	t, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}
	t.Nombre = req.Nombre
	t.AplicaSaldo = req.AplicaSaldo
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return tipoPagoToResponse(t), nil
}

// Eliminar refuses to drop a type still referenced by orders or receipts —
// those rows carry the type id for audit.
func (s *tipoPagoService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, empresaID, id); err != nil {
		return fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}
	enUso, err := s.repo.EnUso(ctx, id)
	if err != nil {
		return err
	}
	if enUso {
		return ErrTipoPagoEnUso
	}
	if err := s.repo.Delete(ctx, empresaID, id); err != nil {
		return fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}
	return nil
}

func tipoPagoToResponse(t *model.TipoPago) *dto.TipoPagoResponse {
	return &dto.TipoPagoResponse{
		ID:          t.ID.String(),
		Nombre:      t.Nombre,
		AplicaSaldo: t.AplicaSaldo.Bool(),
	}
}
