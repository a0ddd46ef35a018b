package service

// informe_service.go
// Sales reporting over delivered orders. Two shapes: resumen (totals plus the
// top-products ranking) and detallado (per-client drill-down). The PDF and
// email variants reuse the resumen aggregation.

import (
	"context"
	"fmt"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/infra"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"
	"github.com/parinohernan/aqua-delivery-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const topProductosLimit = 10

type InformeService interface {
	Resumen(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*dto.InformeResumenResponse, error)
	Detallado(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*dto.InformeDetalladoResponse, error)
	GenerarPDF(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (string, error)
	EnviarPorEmail(ctx context.Context, empresaID uuid.UUID, req dto.EnviarInformeRequest) error
}

type informeService struct {
	repo        repository.InformeRepository
	empresaRepo repository.EmpresaRepository
	dispatcher  *worker.Dispatcher
	storagePath string
}

func NewInformeService(repo repository.InformeRepository, empresaRepo repository.EmpresaRepository, dispatcher *worker.Dispatcher, storagePath string) InformeService {
	return &informeService{repo: repo, empresaRepo: empresaRepo, dispatcher: dispatcher, storagePath: storagePath}
}

func validarRango(desde, hasta string) error {
	d, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return ErrRangoFechas
	}
	h, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return ErrRangoFechas
	}
	if d.After(h) {
		return ErrRangoFechas
	}
	return nil
}

func (s *informeService) Resumen(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*dto.InformeResumenResponse, error) {
	if err := validarRango(desde, hasta); err != nil {
		return nil, err
	}

	resumen, err := s.repo.Resumen(ctx, empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopProductos(ctx, empresaID, desde, hasta, topProductosLimit)
	if err != nil {
		return nil, err
	}

	res := &dto.InformeResumenResponse{
		FechaDesde:    desde,
		FechaHasta:    hasta,
		TotalPedidos:  resumen.TotalPedidos,
		TotalClientes: resumen.TotalClientes,
		TotalVentas:   resumen.TotalVentas,
		TopProductos:  make([]dto.ProductoVendido, 0, len(top)),
	}
	for _, t := range top {
		res.TopProductos = append(res.TopProductos, dto.ProductoVendido{
			ProductoID:  t.ProductoID,
			Descripcion: t.Descripcion,
			Cantidad:    t.Cantidad,
			Total:       t.Total,
		})
	}
	return res, nil
}

func (s *informeService) Detallado(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (*dto.InformeDetalladoResponse, error) {
	if err := validarRango(desde, hasta); err != nil {
		return nil, err
	}

	clientes, err := s.repo.ClientesConEntregas(ctx, empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}

	res := &dto.InformeDetalladoResponse{
		FechaDesde: desde,
		FechaHasta: hasta,
		Clientes:   make([]dto.ClienteDetalle, 0, len(clientes)),
	}
	for _, c := range clientes {
		clienteID, err := uuid.Parse(c.ClienteID)
		if err != nil {
			continue
		}
		productos, err := s.repo.ProductosPorCliente(ctx, empresaID, clienteID, desde, hasta)
		if err != nil {
			return nil, err
		}
		pedidos, err := s.repo.PedidosPorCliente(ctx, empresaID, clienteID, desde, hasta)
		if err != nil {
			return nil, err
		}

		det := dto.ClienteDetalle{
			ClienteID:       c.ClienteID,
			Nombre:          c.Nombre,
			CantidadPedidos: c.CantidadPedidos,
			TotalGastado:    c.TotalGastado,
			Productos:       make([]dto.ProductoClienteDetalle, 0, len(productos)),
			Pedidos:         make([]dto.PedidoResumenDetalle, 0, len(pedidos)),
		}
		for _, p := range productos {
			d := dto.ProductoClienteDetalle{
				Descripcion: p.Descripcion,
				Cantidad:    p.Cantidad,
				Monto:       p.Monto,
				Pedidos:     p.Pedidos,
			}
			if p.Cantidad > 0 {
				d.PrecioPromedio = p.Monto.DivRound(decimal.NewFromInt(int64(p.Cantidad)), 2)
			}
			det.Productos = append(det.Productos, d)
		}
		for _, p := range pedidos {
			det.Pedidos = append(det.Pedidos, dto.PedidoResumenDetalle{
				ID:            p.ID,
				FechaCreacion: p.FechaCreacion,
				FechaEntrega:  p.FechaEntrega,
				Total:         p.Total,
				CantidadItems: p.CantidadItems,
			})
		}
		res.Clientes = append(res.Clientes, det)
	}
	return res, nil
}

func (s *informeService) GenerarPDF(ctx context.Context, empresaID uuid.UUID, desde, hasta string) (string, error) {
	resumen, err := s.Resumen(ctx, empresaID, desde, hasta)
	if err != nil {
		return "", err
	}
	empresa, err := s.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return "", fmt.Errorf("empresa: %w", ErrNotFound)
	}
	return infra.GenerateInformePDF(resumen, empresa.Nombre, s.storagePath)
}

// EnviarPorEmail renders the PDF synchronously and hands delivery to the
// email queue, so the HTTP caller only waits on the aggregation.
func (s *informeService) EnviarPorEmail(ctx context.Context, empresaID uuid.UUID, req dto.EnviarInformeRequest) error {
	pdfPath, err := s.GenerarPDF(ctx, empresaID, req.FechaDesde, req.FechaHasta)
	if err != nil {
		return err
	}

	payload := worker.EmailJobPayload{
		ToEmail: req.Email,
		Subject: fmt.Sprintf("Informe de ventas %s a %s", req.FechaDesde, req.FechaHasta),
		Body:    "Adjuntamos el informe de ventas solicitado.",
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		return err
	}
	log.Info().Str("email", req.Email).Str("desde", req.FechaDesde).Str("hasta", req.FechaHasta).
		Msg("informe encolado para envío por email")
	return nil
}
