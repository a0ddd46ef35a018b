package service_test

// pedido_service_test.go
// Delivery-settlement scenarios: receipt vs balance posting, returnable
// container arithmetic, the pendient guard, and the all-or-nothing property
// of the settlement transaction.

import (
	"context"
	"errors"
	"testing"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPedidoService(f *fixture) service.PedidoService {
	return service.NewPedidoService(f.txr, f.pedidos, f.clientes, f.productos, f.tipos, f.pagos)
}

func TestEntregarEfectivoCortaRecibo(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(1000)
	repartidor := uuid.New()

	resp, err := svc.Entregar(context.Background(), f.empresaID, repartidor, pedido.ID, dto.EntregarPedidoRequest{
		TipoPagoID: f.efectivo.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoEntregado, resp.Estado)
	assert.True(t, resp.Saldo.IsZero(), "cash settlement must not post to the order's saldo")
	require.NotNil(t, resp.FechaEntrega)

	// One receipt for the full total; client balance untouched.
	require.Len(t, f.pagos.pagos, 1)
	for _, pago := range f.pagos.pagos {
		assert.True(t, pago.Monto.Equal(decimal.NewFromInt(1000)))
		require.NotNil(t, pago.PedidoID)
		assert.Equal(t, pedido.ID, *pago.PedidoID)
	}
	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.IsZero())
}

func TestEntregarCuentaCorrienteAplicaSaldo(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(1000)

	// monto_cobrado is ignored when the type posts to balance.
	monto := decimal.NewFromInt(400)
	resp, err := svc.Entregar(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.EntregarPedidoRequest{
		TipoPagoID:   f.cuentaCte.ID.String(),
		MontoCobrado: &monto,
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoEntregado, resp.Estado)
	assert.True(t, resp.Saldo.Equal(decimal.NewFromInt(1000)), "order records the amount posted to balance")

	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.Equal(decimal.NewFromInt(1000)))
	assert.Empty(t, f.pagos.pagos, "balance settlement must not cut a receipt")
}

func TestEntregarRetornables(t *testing.T) {
	cases := []struct {
		name      string
		llevados  int
		devueltos int
		want      int
	}{
		{"client keeps one", 2, 1, 1},
		{"client returns extra", 2, 3, -1},
		{"even exchange", 2, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			svc := newPedidoService(f)
			pedido := f.pedidoPendiente(500)

			_, err := svc.Entregar(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.EntregarPedidoRequest{
				TipoPagoID:           f.efectivo.ID.String(),
				TotalRetornables:     tc.llevados,
				RetornablesDevueltos: tc.devueltos,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.clientes.clientes[f.cliente.ID].Retornables)
		})
	}
}

func TestEntregarRechazaNoPendiente(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(500)
	f.pedidos.pedidos[pedido.ID].Estado = model.EstadoEntregado

	_, err := svc.Entregar(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.EntregarPedidoRequest{
		TipoPagoID: f.efectivo.ID.String(),
	})
	assert.ErrorIs(t, err, service.ErrEstadoInvalido)
}

func TestEntregarPedidoDeOtraEmpresaEsNotFound(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(500)

	_, err := svc.Entregar(context.Background(), uuid.New(), uuid.New(), pedido.ID, dto.EntregarPedidoRequest{
		TipoPagoID: f.efectivo.ID.String(),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestEntregarRollbackTodoONada(t *testing.T) {
	// If cutting the receipt fails mid-transaction, the order must stay
	// pendient and the client's counters must be untouched.
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(800)
	f.pagos.failCreate = errors.New("deadlock")

	_, err := svc.Entregar(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.EntregarPedidoRequest{
		TipoPagoID:           f.efectivo.ID.String(),
		TotalRetornables:     2,
		RetornablesDevueltos: 0,
	})
	require.Error(t, err)

	assert.Equal(t, model.EstadoPendiente, f.pedidos.pedidos[pedido.ID].Estado)
	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.IsZero())
	assert.Zero(t, f.clientes.clientes[f.cliente.ID].Retornables)
	assert.Empty(t, f.pagos.pagos)
}

func TestCambiarEstadoAnuladoNoTocaSaldo(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(900)

	err := svc.CambiarEstado(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.CambiarEstadoRequest{
		Estado: model.EstadoAnulado,
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoAnulado, f.pedidos.pedidos[pedido.ID].Estado)
	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.IsZero())
	assert.Empty(t, f.pagos.pagos)
}

func TestCambiarEstadoSobreEntregadoFalla(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	pedido := f.pedidoPendiente(900)
	f.pedidos.pedidos[pedido.ID].Estado = model.EstadoEntregado

	err := svc.CambiarEstado(context.Background(), f.empresaID, uuid.New(), pedido.ID, dto.CambiarEstadoRequest{
		Estado: model.EstadoAnulado,
	})
	assert.ErrorIs(t, err, service.ErrEstadoInvalido)
}

func TestCrearCongelaPreciosYDescuentaStock(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)

	resp, err := svc.Crear(context.Background(), f.empresaID, f.vendedorID, dto.CrearPedidoRequest{
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{ProductoID: f.bidon.ID.String(), Cantidad: 3},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, model.EstadoPendiente, resp.Estado)
	assert.Empty(t, resp.Advertencias)
	assert.Equal(t, 7, f.productos.productos[f.bidon.ID].Stock)

	// Price changes after creation must not alter the frozen line total.
	f.productos.productos[f.bidon.ID].Precio = decimal.NewFromInt(999)
	pedidoID, _ := uuid.Parse(resp.ID)
	items, err := svc.ObtenerItems(context.Background(), f.empresaID, pedidoID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Total.Equal(decimal.NewFromInt(1500)))
}

func TestCrearConStockInsuficienteAdvierte(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	f.productos.productos[f.bidon.ID].Stock = 2

	resp, err := svc.Crear(context.Background(), f.empresaID, f.vendedorID, dto.CrearPedidoRequest{
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{ProductoID: f.bidon.ID.String(), Cantidad: 5},
		},
	})
	require.NoError(t, err, "over-selling creates the order anyway")

	require.Len(t, resp.Advertencias, 1)
	assert.Contains(t, resp.Advertencias[0], "Bidón 20L")
	assert.Equal(t, -3, f.productos.productos[f.bidon.ID].Stock, "stock goes negative")
}

func TestCrearConProductoInactivoFalla(t *testing.T) {
	f := newFixture()
	svc := newPedidoService(f)
	f.productos.productos[f.bidon.ID].Activo = false

	_, err := svc.Crear(context.Background(), f.empresaID, f.vendedorID, dto.CrearPedidoRequest{
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{ProductoID: f.bidon.ID.String(), Cantidad: 1},
		},
	})
	assert.Error(t, err)
}
