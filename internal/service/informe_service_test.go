package service_test

import (
	"context"
	"testing"

	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInformeRepo returns canned aggregate rows.
type stubInformeRepo struct {
	resumen  repository.ResumenRow
	top      []repository.TopProductoRow
	clientes []repository.ClienteVentasRow
}

func (r *stubInformeRepo) Resumen(_ context.Context, _ uuid.UUID, _, _ string) (*repository.ResumenRow, error) {
	row := r.resumen
	return &row, nil
}

func (r *stubInformeRepo) TopProductos(_ context.Context, _ uuid.UUID, _, _ string, _ int) ([]repository.TopProductoRow, error) {
	return r.top, nil
}

func (r *stubInformeRepo) ClientesConEntregas(_ context.Context, _ uuid.UUID, _, _ string) ([]repository.ClienteVentasRow, error) {
	return r.clientes, nil
}

func (r *stubInformeRepo) ProductosPorCliente(_ context.Context, _, _ uuid.UUID, _, _ string) ([]repository.ProductoClienteRow, error) {
	return []repository.ProductoClienteRow{
		{Descripcion: "Bidón 20L", Cantidad: 4, Monto: decimal.NewFromInt(2000), Pedidos: 2},
	}, nil
}

func (r *stubInformeRepo) PedidosPorCliente(_ context.Context, _, _ uuid.UUID, _, _ string) ([]repository.PedidoClienteRow, error) {
	return nil, nil
}

var _ repository.InformeRepository = (*stubInformeRepo)(nil)

func TestInformeResumen(t *testing.T) {
	repo := &stubInformeRepo{
		resumen: repository.ResumenRow{TotalPedidos: 12, TotalClientes: 5, TotalVentas: decimal.NewFromInt(9800)},
		top: []repository.TopProductoRow{
			{ProductoID: uuid.NewString(), Descripcion: "Bidón 20L", Cantidad: 30, Total: decimal.NewFromInt(9000)},
		},
	}
	svc := service.NewInformeService(repo, newStubEmpresaRepo(), nil, t.TempDir())

	res, err := svc.Resumen(context.Background(), uuid.New(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.TotalPedidos)
	assert.Equal(t, int64(5), res.TotalClientes)
	assert.True(t, res.TotalVentas.Equal(decimal.NewFromInt(9800)))
	require.Len(t, res.TopProductos, 1)
	assert.Equal(t, "Bidón 20L", res.TopProductos[0].Descripcion)
}

func TestInformeDetalladoCalculaPrecioPromedio(t *testing.T) {
	repo := &stubInformeRepo{
		clientes: []repository.ClienteVentasRow{
			{ClienteID: uuid.NewString(), Nombre: "Almacén Don Luis", CantidadPedidos: 2, TotalGastado: decimal.NewFromInt(2000)},
		},
	}
	svc := service.NewInformeService(repo, newStubEmpresaRepo(), nil, t.TempDir())

	res, err := svc.Detallado(context.Background(), uuid.New(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, res.Clientes, 1)
	require.Len(t, res.Clientes[0].Productos, 1)
	assert.True(t, res.Clientes[0].Productos[0].PrecioPromedio.Equal(decimal.NewFromInt(500)),
		"2000 / 4 units")
}

func TestInformeRechazaRangoInvertido(t *testing.T) {
	svc := service.NewInformeService(&stubInformeRepo{}, newStubEmpresaRepo(), nil, t.TempDir())

	_, err := svc.Resumen(context.Background(), uuid.New(), "2026-08-31", "2026-08-01")
	assert.ErrorIs(t, err, service.ErrRangoFechas)

	_, err = svc.Detallado(context.Background(), uuid.New(), "no-es-fecha", "2026-08-01")
	assert.ErrorIs(t, err, service.ErrRangoFechas)
}
