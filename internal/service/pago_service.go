package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoService interface {
	Listar(ctx context.Context, empresaID uuid.UUID, filter dto.PagoFilter) ([]dto.PagoResponse, error)
	Crear(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.CrearPagoRequest) (*dto.PagoResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarPagoRequest) (*dto.PagoResponse, error)
	PagoCliente(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.PagoClienteRequest) (*dto.PagoResponse, error)
}

type pagoService struct {
	txr          repository.TxRunner
	repo         repository.PagoRepository
	clienteRepo  repository.ClienteRepository
	pedidoRepo   repository.PedidoRepository
	tipoPagoRepo repository.TipoPagoRepository
}

func NewPagoService(
	txr repository.TxRunner,
	repo repository.PagoRepository,
	clienteRepo repository.ClienteRepository,
	pedidoRepo repository.PedidoRepository,
	tipoPagoRepo repository.TipoPagoRepository,
) PagoService {
	return &pagoService{
		txr:          txr,
		repo:         repo,
		clienteRepo:  clienteRepo,
		pedidoRepo:   pedidoRepo,
		tipoPagoRepo: tipoPagoRepo,
	}
}

func (s *pagoService) Listar(ctx context.Context, empresaID uuid.UUID, filter dto.PagoFilter) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.List(ctx, empresaID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		out = append(out, *pagoToResponse(&pagos[i]))
	}
	return out, nil
}

// Crear records an order-tied receipt. It does not touch the client's saldo —
// balance movements happen only in settlement and PagoCliente.
func (s *pagoService) Crear(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.CrearPagoRequest) (*dto.PagoResponse, error) {
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, fmt.Errorf("pedido_id inválido: %w", err)
	}
	tipoPagoID, err := uuid.Parse(req.TipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo_pago_id inválido: %w", err)
	}

	pedido, err := s.pedidoRepo.FindByID(ctx, empresaID, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("pedido: %w", ErrNotFound)
	}
	if _, err := s.tipoPagoRepo.FindByID(ctx, empresaID, tipoPagoID); err != nil {
		return nil, fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}

	pago := model.Pago{
		ID:         uuid.New(),
		EmpresaID:  empresaID,
		PedidoID:   &pedidoID,
		ClienteID:  pedido.ClienteID,
		VendedorID: vendedorID,
		TipoPagoID: tipoPagoID,
		Monto:      req.Monto,
		Notas:      req.Notas,
	}
	txErr := s.txr.RunTx(ctx, func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &pago)
	})
	if txErr != nil {
		return nil, txErr
	}
	return pagoToResponse(&pago), nil
}

func (s *pagoService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarPagoRequest) (*dto.PagoResponse, error) {
	pago, err := s.repo.FindByID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("pago: %w", ErrNotFound)
	}
	pago.Monto = req.Monto
	pago.Notas = req.Notas
	if err := s.repo.Update(ctx, pago); err != nil {
		return nil, err
	}
	return pagoToResponse(pago), nil
}

// ── PagoCliente ───────────────────────────────────────────────────────────────
// Direct payment against the cuenta corriente, independent of any order.
// The chosen payment type must NOT post to balance (that would be circular).
// One transaction: saldo -= monto; retornables -= devueltos (may go negative,
// meaning the business now owes containers); insert the receipt with a
// human-readable note describing any returnables movement.

func (s *pagoService) PagoCliente(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.PagoClienteRequest) (*dto.PagoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	tipoPagoID, err := uuid.Parse(req.TipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo_pago_id inválido: %w", err)
	}

	cliente, err := s.clienteRepo.FindByID(ctx, empresaID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNotFound)
	}
	tipoPago, err := s.tipoPagoRepo.FindByID(ctx, empresaID, tipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}
	if tipoPago.AplicaSaldo.Bool() {
		return nil, ErrTipoPagoAplicaSaldo
	}

	notas := req.Notas
	if req.RetornablesDevueltos != 0 {
		linea := fmt.Sprintf("Devolvió %d retornables", req.RetornablesDevueltos)
		if notas != "" {
			notas += " — " + linea
		} else {
			notas = linea
		}
	}

	pago := model.Pago{
		ID:         uuid.New(),
		EmpresaID:  empresaID,
		ClienteID:  cliente.ID,
		VendedorID: vendedorID,
		TipoPagoID: tipoPagoID,
		Monto:      req.Monto,
		Notas:      notas,
		CreatedAt:  time.Now(),
	}

	txErr := s.txr.RunTx(ctx, func(tx *gorm.DB) error {
		if err := s.clienteRepo.AjustarSaldoTx(tx, cliente.ID, req.Monto.Neg()); err != nil {
			return err
		}
		if req.RetornablesDevueltos != 0 {
			if err := s.clienteRepo.AjustarRetornablesTx(tx, cliente.ID, -req.RetornablesDevueltos); err != nil {
				return err
			}
		}
		return s.repo.CreateTx(tx, &pago)
	})
	if txErr != nil {
		return nil, txErr
	}
	resp := pagoToResponse(&pago)
	resp.Cliente = cliente.Nombre
	resp.TipoPago = tipoPago.Nombre
	return resp, nil
}

func pagoToResponse(p *model.Pago) *dto.PagoResponse {
	resp := &dto.PagoResponse{
		ID:         p.ID.String(),
		ClienteID:  p.ClienteID.String(),
		VendedorID: p.VendedorID.String(),
		TipoPagoID: p.TipoPagoID.String(),
		Monto:      p.Monto,
		Notas:      p.Notas,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.PedidoID != nil {
		v := p.PedidoID.String()
		resp.PedidoID = &v
	}
	if p.Cliente != nil {
		resp.Cliente = p.Cliente.Nombre
	}
	if p.TipoPago != nil {
		resp.TipoPago = p.TipoPago.Nombre
	}
	return resp
}
