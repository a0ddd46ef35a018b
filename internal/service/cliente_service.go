package service

import (
	"context"
	"fmt"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClienteService interface {
	Listar(ctx context.Context, empresaID uuid.UUID, filter dto.ClienteFilter) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Listar(ctx context.Context, empresaID uuid.UUID, filter dto.ClienteFilter) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, empresaID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNotFound)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	zonaID, err := parseOptionalUUID(req.ZonaID)
	if err != nil {
		return nil, err
	}
	c := model.Cliente{
		ID:          uuid.New(),
		EmpresaID:   empresaID,
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		Direccion:   req.Direccion,
		ZonaID:      zonaID,
		Saldo:       decimal.Zero,
		Retornables: 0,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNotFound)
	}
	zonaID, err := parseOptionalUUID(req.ZonaID)
	if err != nil {
		return nil, err
	}
	c.Nombre = req.Nombre
	c.Telefono = req.Telefono
	c.Direccion = req.Direccion
	if zonaID != nil {
		c.ZonaID = zonaID
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("id inválido: %w", err)
	}
	return &id, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	resp := &dto.ClienteResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Telefono:    c.Telefono,
		Direccion:   c.Direccion,
		Saldo:       c.Saldo,
		Retornables: c.Retornables,
		Activo:      c.Activo,
	}
	if c.ZonaID != nil {
		v := c.ZonaID.String()
		resp.ZonaID = &v
	}
	if c.Zona != nil {
		resp.Zona = c.Zona.Nombre
	}
	return resp
}
