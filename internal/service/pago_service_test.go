package service_test

// pago_service_test.go
// Direct client payments: cuenta corriente arithmetic, returnable credits,
// and the aplica_saldo rejection.

import (
	"context"
	"testing"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPagoService(f *fixture) service.PagoService {
	return service.NewPagoService(f.txr, f.pagos, f.clientes, f.pedidos, f.tipos)
}

func TestPagoClienteBajaSaldo(t *testing.T) {
	f := newFixture()
	svc := newPagoService(f)
	f.clientes.clientes[f.cliente.ID].Saldo = decimal.NewFromInt(3000)

	resp, err := svc.PagoCliente(context.Background(), f.empresaID, f.vendedorID, dto.PagoClienteRequest{
		ClienteID:  f.cliente.ID.String(),
		TipoPagoID: f.efectivo.ID.String(),
		Monto:      decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.Equal(decimal.NewFromInt(1800)))
	assert.Nil(t, resp.PedidoID, "direct payments are not tied to an order")
	require.Len(t, f.pagos.pagos, 1)
}

func TestPagoClienteConRetornables(t *testing.T) {
	f := newFixture()
	svc := newPagoService(f)
	f.clientes.clientes[f.cliente.ID].Saldo = decimal.NewFromInt(500)
	f.clientes.clientes[f.cliente.ID].Retornables = 4

	resp, err := svc.PagoCliente(context.Background(), f.empresaID, f.vendedorID, dto.PagoClienteRequest{
		ClienteID:            f.cliente.ID.String(),
		TipoPagoID:           f.efectivo.ID.String(),
		Monto:                decimal.NewFromInt(500),
		RetornablesDevueltos: 3,
		Notas:                "pasó por el local",
	})
	require.NoError(t, err)

	c := f.clientes.clientes[f.cliente.ID]
	assert.True(t, c.Saldo.IsZero())
	assert.Equal(t, 1, c.Retornables)
	assert.Contains(t, resp.Notas, "pasó por el local")
	assert.Contains(t, resp.Notas, "Devolvió 3 retornables")
}

func TestPagoClienteRetornablesPuedeQuedarNegativo(t *testing.T) {
	f := newFixture()
	svc := newPagoService(f)
	f.clientes.clientes[f.cliente.ID].Retornables = 1

	_, err := svc.PagoCliente(context.Background(), f.empresaID, f.vendedorID, dto.PagoClienteRequest{
		ClienteID:            f.cliente.ID.String(),
		TipoPagoID:           f.efectivo.ID.String(),
		Monto:                decimal.NewFromInt(100),
		RetornablesDevueltos: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, -2, f.clientes.clientes[f.cliente.ID].Retornables,
		"negative means the business owes containers")
}

func TestPagoClienteRechazaTipoQueAplicaSaldo(t *testing.T) {
	f := newFixture()
	svc := newPagoService(f)
	f.clientes.clientes[f.cliente.ID].Saldo = decimal.NewFromInt(2000)
	f.clientes.clientes[f.cliente.ID].Retornables = 5

	_, err := svc.PagoCliente(context.Background(), f.empresaID, f.vendedorID, dto.PagoClienteRequest{
		ClienteID:            f.cliente.ID.String(),
		TipoPagoID:           f.cuentaCte.ID.String(),
		Monto:                decimal.NewFromInt(500),
		RetornablesDevueltos: 2,
	})
	assert.ErrorIs(t, err, service.ErrTipoPagoAplicaSaldo)

	// Nothing moved.
	c := f.clientes.clientes[f.cliente.ID]
	assert.True(t, c.Saldo.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 5, c.Retornables)
	assert.Empty(t, f.pagos.pagos)
}

func TestCrearPagoNoTocaSaldo(t *testing.T) {
	f := newFixture()
	svc := newPagoService(f)
	pedido := f.pedidoPendiente(700)
	f.clientes.clientes[f.cliente.ID].Saldo = decimal.NewFromInt(700)

	_, err := svc.Crear(context.Background(), f.empresaID, f.vendedorID, dto.CrearPagoRequest{
		PedidoID:   pedido.ID.String(),
		TipoPagoID: f.efectivo.ID.String(),
		Monto:      decimal.NewFromInt(700),
	})
	require.NoError(t, err)

	assert.True(t, f.clientes.clientes[f.cliente.ID].Saldo.Equal(decimal.NewFromInt(700)),
		"order-tied receipts only record the voucher")
	require.Len(t, f.pagos.pagos, 1)
}

func TestEliminarTipoPagoEnUso(t *testing.T) {
	f := newFixture()
	svc := service.NewTipoPagoService(f.tipos)
	f.tipos.enUso = true

	err := svc.Eliminar(context.Background(), f.empresaID, f.efectivo.ID)
	assert.ErrorIs(t, err, service.ErrTipoPagoEnUso)

	f.tipos.enUso = false
	require.NoError(t, svc.Eliminar(context.Background(), f.empresaID, f.efectivo.ID))
	_, err = f.tipos.FindByID(context.Background(), f.empresaID, f.efectivo.ID)
	assert.Error(t, err)
}
