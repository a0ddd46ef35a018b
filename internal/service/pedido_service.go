package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Crear(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	ObtenerItems(ctx context.Context, empresaID, pedidoID uuid.UUID) ([]dto.ItemPedidoResponse, error)
	CambiarEstado(ctx context.Context, empresaID, repartidorID, pedidoID uuid.UUID, req dto.CambiarEstadoRequest) error
	Entregar(ctx context.Context, empresaID, repartidorID, pedidoID uuid.UUID, req dto.EntregarPedidoRequest) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	txr          repository.TxRunner
	repo         repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	tipoPagoRepo repository.TipoPagoRepository
	pagoRepo     repository.PagoRepository
}

func NewPedidoService(
	txr repository.TxRunner,
	repo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	tipoPagoRepo repository.TipoPagoRepository,
	pagoRepo repository.PagoRepository,
) PedidoService {
	return &pedidoService{
		txr:          txr,
		repo:         repo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		tipoPagoRepo: tipoPagoRepo,
		pagoRepo:     pagoRepo,
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Order creation:
//   1. Resolve client and products inside the caller's company
//   2. Freeze each line total at the current product price
//   3. BEGIN TX: insert pedido + items, decrement stock per line
//   4. COMMIT
// Stock going negative is an advisory condition, not an error: the order is
// created anyway and the response carries one warning per over-sold line.

func (s *pedidoService) Crear(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	cliente, err := s.clienteRepo.FindByID(ctx, empresaID, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNotFound)
	}

	var zonaID *uuid.UUID
	if req.ZonaID != nil {
		z, err := uuid.Parse(*req.ZonaID)
		if err != nil {
			return nil, fmt.Errorf("zona_id inválido: %w", err)
		}
		zonaID = &z
	} else {
		zonaID = cliente.ZonaID
	}

	type resolvedItem struct {
		productoID  uuid.UUID
		descripcion string
		cantidad    int
		total       decimal.Decimal
	}

	var (
		resolved     []resolvedItem
		advertencias []string
	)
	total := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, empresaID, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", item.ProductoID, ErrNotFound)
		}
		if !p.Activo {
			return nil, fmt.Errorf("el producto %s está inactivo y no puede venderse", p.Descripcion)
		}
		if p.Stock < item.Cantidad {
			advertencias = append(advertencias,
				fmt.Sprintf("stock insuficiente para %s: quedará en %d", p.Descripcion, p.Stock-item.Cantidad))
		}
		lineTotal := p.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			productoID:  pid,
			descripcion: p.Descripcion,
			cantidad:    item.Cantidad,
			total:       lineTotal,
		})
	}

	pedido := model.Pedido{
		ID:            uuid.New(),
		EmpresaID:     empresaID,
		ClienteID:     clienteID,
		VendedorID:    vendedorID,
		ZonaID:        zonaID,
		Total:         total,
		Estado:        model.EstadoPendiente,
		Saldo:         decimal.Zero,
		FechaCreacion: time.Now(),
	}
	for _, r := range resolved {
		pedido.Items = append(pedido.Items, model.PedidoItem{
			ID:         uuid.New(),
			PedidoID:   pedido.ID,
			ProductoID: r.productoID,
			Cantidad:   r.cantidad,
			Total:      r.total,
		})
	}

	txErr := s.txr.RunTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &pedido); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.productoRepo.DescontarStockTx(tx, r.productoID, r.cantidad); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", r.descripcion, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	for _, a := range advertencias {
		log.Warn().Str("pedido_id", pedido.ID.String()).Msg(a)
	}

	resp := pedidoToResponse(&pedido)
	resp.Cliente = cliente.Nombre
	resp.Advertencias = advertencias
	for i, r := range resolved {
		resp.Items[i].Descripcion = r.descripcion
	}
	return resp, nil
}

// ── Entregar ──────────────────────────────────────────────────────────────────
// Delivery settlement. Inside one transaction:
//   1. normalize the payment type's aplica_saldo flag
//   2. estado → entregad (guarded UPDATE re-checks pendient), stamp delivery
//   3. aplica_saldo → post the total to the client's saldo (no receipt);
//      otherwise cut an immediate receipt for the collected amount
//   4. adjust the client's retornables by (total carried − returned)
// Either all three mutations land or none do.

func (s *pedidoService) Entregar(ctx context.Context, empresaID, repartidorID, pedidoID uuid.UUID, req dto.EntregarPedidoRequest) (*dto.PedidoResponse, error) {
	tipoPagoID, err := uuid.Parse(req.TipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo_pago_id inválido: %w", err)
	}

	pedido, err := s.repo.FindByID(ctx, empresaID, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("pedido: %w", ErrNotFound)
	}
	if pedido.Estado != model.EstadoPendiente {
		return nil, ErrEstadoInvalido
	}

	tipoPago, err := s.tipoPagoRepo.FindByID(ctx, empresaID, tipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo de pago: %w", ErrNotFound)
	}
	aplicaSaldo := tipoPago.AplicaSaldo.Bool()

	// Amount collected: explicit value wins; when the type posts to balance it
	// is ignored entirely. Over- or under-collection is allowed — the
	// difference is simply not reconciled here.
	montoCobrado := pedido.Total
	if req.MontoCobrado != nil {
		montoCobrado = *req.MontoCobrado
	}

	saldoAplicado := decimal.Zero
	if aplicaSaldo {
		saldoAplicado = pedido.Total
	}
	ahora := time.Now()

	txErr := s.txr.RunTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.repo.MarcarEntregadoTx(tx, empresaID, pedidoID, repartidorID, tipoPagoID, saldoAplicado, ahora)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race against a concurrent settlement or cancellation.
			return ErrEstadoInvalido
		}

		if aplicaSaldo {
			if err := s.clienteRepo.AjustarSaldoTx(tx, pedido.ClienteID, pedido.Total); err != nil {
				return err
			}
		} else {
			pago := model.Pago{
				ID:         uuid.New(),
				EmpresaID:  empresaID,
				PedidoID:   &pedido.ID,
				ClienteID:  pedido.ClienteID,
				VendedorID: repartidorID,
				TipoPagoID: tipoPagoID,
				Monto:      montoCobrado,
				Notas:      fmt.Sprintf("Cobro en entrega de pedido %s", pedido.ID),
			}
			if err := s.pagoRepo.CreateTx(tx, &pago); err != nil {
				return err
			}
		}

		if req.TotalRetornables > 0 {
			noDevueltos := req.TotalRetornables - req.RetornablesDevueltos
			if noDevueltos != 0 {
				if err := s.clienteRepo.AjustarRetornablesTx(tx, pedido.ClienteID, noDevueltos); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	pedido.Estado = model.EstadoEntregado
	pedido.RepartidorID = &repartidorID
	pedido.TipoPagoID = &tipoPagoID
	pedido.Saldo = saldoAplicado
	pedido.FechaEntrega = &ahora
	return pedidoToResponse(pedido), nil
}

// ── CambiarEstado ─────────────────────────────────────────────────────────────
// Non-delivery transitions (cancel, corrections). Only touches estado and the
// delivering salesperson — never saldo or retornables. Delivering goes through
// Entregar.

func (s *pedidoService) CambiarEstado(ctx context.Context, empresaID, repartidorID, pedidoID uuid.UUID, req dto.CambiarEstadoRequest) error {
	if _, err := s.repo.FindByID(ctx, empresaID, pedidoID); err != nil {
		return fmt.Errorf("pedido: %w", ErrNotFound)
	}

	return s.txr.RunTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.repo.CambiarEstadoTx(tx, empresaID, pedidoID, repartidorID, req.Estado)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrEstadoInvalido
		}
		return nil
	})
}

// ── Listados ──────────────────────────────────────────────────────────────────

func (s *pedidoService) Listar(ctx context.Context, empresaID uuid.UUID, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx, empresaID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, *pedidoToResponse(&pedidos[i]))
	}
	return out, nil
}

func (s *pedidoService) ObtenerItems(ctx context.Context, empresaID, pedidoID uuid.UUID) ([]dto.ItemPedidoResponse, error) {
	items, err := s.repo.ListItems(ctx, empresaID, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("pedido: %w", ErrNotFound)
	}
	out := make([]dto.ItemPedidoResponse, 0, len(items))
	for _, item := range items {
		descripcion := ""
		if item.Producto != nil {
			descripcion = item.Producto.Descripcion
		}
		out = append(out, dto.ItemPedidoResponse{
			ProductoID:  item.ProductoID.String(),
			Descripcion: descripcion,
			Cantidad:    item.Cantidad,
			Total:       item.Total,
		})
	}
	return out, nil
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:            p.ID.String(),
		ClienteID:     p.ClienteID.String(),
		VendedorID:    p.VendedorID.String(),
		Total:         p.Total,
		Estado:        p.Estado,
		Saldo:         p.Saldo,
		FechaCreacion: p.FechaCreacion.Format(time.RFC3339),
	}
	if p.Cliente != nil {
		resp.Cliente = p.Cliente.Nombre
	}
	if p.RepartidorID != nil {
		v := p.RepartidorID.String()
		resp.RepartidorID = &v
	}
	if p.ZonaID != nil {
		v := p.ZonaID.String()
		resp.ZonaID = &v
	}
	if p.TipoPagoID != nil {
		v := p.TipoPagoID.String()
		resp.TipoPagoID = &v
	}
	if p.FechaEntrega != nil {
		v := p.FechaEntrega.Format(time.RFC3339)
		resp.FechaEntrega = &v
	}
	for _, item := range p.Items {
		descripcion := ""
		if item.Producto != nil {
			descripcion = item.Producto.Descripcion
		}
		resp.Items = append(resp.Items, dto.ItemPedidoResponse{
			ProductoID:  item.ProductoID.String(),
			Descripcion: descripcion,
			Cantidad:    item.Cantidad,
			Total:       item.Total,
		})
	}
	return resp
}
