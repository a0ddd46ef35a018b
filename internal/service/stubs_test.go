package service_test

// stubs_test.go
// In-memory repository stubs shared by the service tests, plus a transaction
// runner that snapshots the stub state before each callback and restores it
// when the callback fails — so the all-or-nothing property of the settlement
// workflow is observable without a database.

import (
	"context"
	"errors"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNoEncontrado = errors.New("record not found")

// ── Snapshot-based transaction runner ────────────────────────────────────────

type snapshotter interface {
	snapshot() func()
}

type memTxRunner struct {
	stores []snapshotter
}

func newMemTxRunner(stores ...snapshotter) *memTxRunner {
	return &memTxRunner{stores: stores}
}

func (r *memTxRunner) RunTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	restores := make([]func(), 0, len(r.stores))
	for _, s := range r.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(nil); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

var _ repository.TxRunner = (*memTxRunner)(nil)

// ── ClienteRepository stub ───────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) snapshot() func() {
	copia := make(map[uuid.UUID]*model.Cliente, len(r.clientes))
	for id, c := range r.clientes {
		cloned := *c
		copia[id] = &cloned
	}
	return func() { r.clientes = copia }
}

func (r *stubClienteRepo) List(_ context.Context, empresaID uuid.UUID, _ dto.ClienteFilter) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, empresaID, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) AjustarSaldoTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.clientes[id]
	if !ok {
		return errNoEncontrado
	}
	c.Saldo = c.Saldo.Add(delta)
	return nil
}

func (r *stubClienteRepo) AjustarRetornablesTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	c, ok := r.clientes[id]
	if !ok {
		return errNoEncontrado
	}
	c.Retornables += delta
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── ProductoRepository stub ──────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) snapshot() func() {
	copia := make(map[uuid.UUID]*model.Producto, len(r.productos))
	for id, p := range r.productos {
		cloned := *p
		copia[id] = &cloned
	}
	return func() { r.productos = copia }
}

func (r *stubProductoRepo) List(_ context.Context, empresaID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.EmpresaID != empresaID {
			continue
		}
		if !filter.IncluirInactivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, empresaID, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	cloned := *p
	r.productos[p.ID] = &cloned
	return nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	cloned := *p
	r.productos[p.ID] = &cloned
	return nil
}

func (r *stubProductoRepo) SetActivo(_ context.Context, empresaID, id uuid.UUID, activo bool) error {
	p, ok := r.productos[id]
	if !ok || p.EmpresaID != empresaID {
		return errNoEncontrado
	}
	p.Activo = activo
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok {
		return errNoEncontrado
	}
	p.Stock -= cantidad
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── PedidoRepository stub ────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) snapshot() func() {
	copia := make(map[uuid.UUID]*model.Pedido, len(r.pedidos))
	for id, p := range r.pedidos {
		cloned := *p
		cloned.Items = append([]model.PedidoItem(nil), p.Items...)
		copia[id] = &cloned
	}
	return func() { r.pedidos = copia }
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	cloned := *p
	cloned.Items = append([]model.PedidoItem(nil), p.Items...)
	r.pedidos[p.ID] = &cloned
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, empresaID, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	cloned := *p
	cloned.Items = append([]model.PedidoItem(nil), p.Items...)
	return &cloned, nil
}

func (r *stubPedidoRepo) List(_ context.Context, empresaID uuid.UUID, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.EmpresaID != empresaID {
			continue
		}
		if filter.Estado != "" && filter.Estado != "all" && p.Estado != filter.Estado {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListItems(_ context.Context, empresaID, pedidoID uuid.UUID) ([]model.PedidoItem, error) {
	p, ok := r.pedidos[pedidoID]
	if !ok || p.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	return append([]model.PedidoItem(nil), p.Items...), nil
}

func (r *stubPedidoRepo) MarcarEntregadoTx(_ *gorm.DB, empresaID, id, repartidorID, tipoPagoID uuid.UUID, saldo decimal.Decimal, fecha time.Time) (int64, error) {
	p, ok := r.pedidos[id]
	if !ok || p.EmpresaID != empresaID || p.Estado != model.EstadoPendiente {
		return 0, nil
	}
	p.Estado = model.EstadoEntregado
	p.RepartidorID = &repartidorID
	p.TipoPagoID = &tipoPagoID
	p.Saldo = saldo
	p.FechaEntrega = &fecha
	return 1, nil
}

func (r *stubPedidoRepo) CambiarEstadoTx(_ *gorm.DB, empresaID, id, repartidorID uuid.UUID, estado string) (int64, error) {
	p, ok := r.pedidos[id]
	if !ok || p.EmpresaID != empresaID || p.Estado != model.EstadoPendiente {
		return 0, nil
	}
	p.Estado = estado
	p.RepartidorID = &repartidorID
	return 1, nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── PagoRepository stub ──────────────────────────────────────────────────────

type stubPagoRepo struct {
	pagos      map[uuid.UUID]*model.Pago
	failCreate error // injected fault for rollback tests
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago)}
}

func (r *stubPagoRepo) snapshot() func() {
	copia := make(map[uuid.UUID]*model.Pago, len(r.pagos))
	for id, p := range r.pagos {
		cloned := *p
		copia[id] = &cloned
	}
	return func() { r.pagos = copia }
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cloned := *p
	r.pagos[p.ID] = &cloned
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, empresaID, id uuid.UUID) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubPagoRepo) List(_ context.Context, empresaID uuid.UUID, filter dto.PagoFilter) ([]model.Pago, error) {
	var out []model.Pago
	for _, p := range r.pagos {
		if p.EmpresaID != empresaID {
			continue
		}
		if filter.ClienteID != "" && p.ClienteID.String() != filter.ClienteID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPagoRepo) Update(_ context.Context, p *model.Pago) error {
	cloned := *p
	r.pagos[p.ID] = &cloned
	return nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// ── TipoPagoRepository stub ──────────────────────────────────────────────────

type stubTipoPagoRepo struct {
	tipos map[uuid.UUID]*model.TipoPago
	enUso bool
}

func newStubTipoPagoRepo() *stubTipoPagoRepo {
	return &stubTipoPagoRepo{tipos: make(map[uuid.UUID]*model.TipoPago)}
}

func (r *stubTipoPagoRepo) snapshot() func() {
	copia := make(map[uuid.UUID]*model.TipoPago, len(r.tipos))
	for id, t := range r.tipos {
		cloned := *t
		copia[id] = &cloned
	}
	return func() { r.tipos = copia }
}

func (r *stubTipoPagoRepo) List(_ context.Context, empresaID uuid.UUID) ([]model.TipoPago, error) {
	var out []model.TipoPago
	for _, t := range r.tipos {
		if t.EmpresaID == empresaID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTipoPagoRepo) FindByID(_ context.Context, empresaID, id uuid.UUID) (*model.TipoPago, error) {
	t, ok := r.tipos[id]
	if !ok || t.EmpresaID != empresaID {
		return nil, errNoEncontrado
	}
	cloned := *t
	return &cloned, nil
}

func (r *stubTipoPagoRepo) Create(_ context.Context, t *model.TipoPago) error {
	cloned := *t
	r.tipos[t.ID] = &cloned
	return nil
}

func (r *stubTipoPagoRepo) Update(_ context.Context, t *model.TipoPago) error {
	cloned := *t
	r.tipos[t.ID] = &cloned
	return nil
}

func (r *stubTipoPagoRepo) Delete(_ context.Context, empresaID, id uuid.UUID) error {
	t, ok := r.tipos[id]
	if !ok || t.EmpresaID != empresaID {
		return errNoEncontrado
	}
	delete(r.tipos, id)
	return nil
}

func (r *stubTipoPagoRepo) EnUso(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.enUso, nil
}

var _ repository.TipoPagoRepository = (*stubTipoPagoRepo)(nil)

// ── Vendedor / Empresa stubs ─────────────────────────────────────────────────

type stubVendedorRepo struct {
	vendedores map[string]*model.Vendedor // key: empresaID|telegramID
}

func newStubVendedorRepo() *stubVendedorRepo {
	return &stubVendedorRepo{vendedores: make(map[string]*model.Vendedor)}
}

func (r *stubVendedorRepo) FindByTelegramID(_ context.Context, empresaID uuid.UUID, telegramID string) (*model.Vendedor, error) {
	v, ok := r.vendedores[empresaID.String()+"|"+telegramID]
	if !ok || !v.Activo {
		return nil, errNoEncontrado
	}
	cloned := *v
	return &cloned, nil
}

func (r *stubVendedorRepo) Create(_ context.Context, v *model.Vendedor) error {
	cloned := *v
	r.vendedores[v.EmpresaID.String()+"|"+v.TelegramID] = &cloned
	return nil
}

var _ repository.VendedorRepository = (*stubVendedorRepo)(nil)

type stubEmpresaRepo struct {
	empresas map[uuid.UUID]*model.Empresa
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{empresas: make(map[uuid.UUID]*model.Empresa)}
}

func (r *stubEmpresaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.Codigo == codigo {
			cloned := *e
			return &cloned, nil
		}
	}
	return nil, errNoEncontrado
}

func (r *stubEmpresaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, errNoEncontrado
	}
	cloned := *e
	return &cloned, nil
}

func (r *stubEmpresaRepo) Create(_ context.Context, e *model.Empresa) error {
	cloned := *e
	r.empresas[e.ID] = &cloned
	return nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)

// ── Shared fixture ───────────────────────────────────────────────────────────

type fixture struct {
	empresaID  uuid.UUID
	vendedorID uuid.UUID

	clientes  *stubClienteRepo
	productos *stubProductoRepo
	pedidos   *stubPedidoRepo
	pagos     *stubPagoRepo
	tipos     *stubTipoPagoRepo
	txr       *memTxRunner

	cliente   *model.Cliente
	bidon     *model.Producto
	efectivo  *model.TipoPago
	cuentaCte *model.TipoPago
}

func newFixture() *fixture {
	f := &fixture{
		empresaID:  uuid.New(),
		vendedorID: uuid.New(),
		clientes:   newStubClienteRepo(),
		productos:  newStubProductoRepo(),
		pedidos:    newStubPedidoRepo(),
		pagos:      newStubPagoRepo(),
		tipos:      newStubTipoPagoRepo(),
	}
	f.txr = newMemTxRunner(f.clientes, f.productos, f.pedidos, f.pagos, f.tipos)

	f.cliente = &model.Cliente{
		ID:        uuid.New(),
		EmpresaID: f.empresaID,
		Nombre:    "Almacén Don Luis",
		Saldo:     decimal.Zero,
		Activo:    true,
	}
	f.clientes.clientes[f.cliente.ID] = f.cliente

	f.bidon = &model.Producto{
		ID:           uuid.New(),
		EmpresaID:    f.empresaID,
		Descripcion:  "Bidón 20L",
		Precio:       decimal.NewFromInt(500),
		Stock:        10,
		EsRetornable: true,
		Activo:       true,
	}
	f.productos.productos[f.bidon.ID] = f.bidon

	f.efectivo = &model.TipoPago{
		ID:          uuid.New(),
		EmpresaID:   f.empresaID,
		Nombre:      "Efectivo",
		AplicaSaldo: model.BitBool(false),
	}
	f.cuentaCte = &model.TipoPago{
		ID:          uuid.New(),
		EmpresaID:   f.empresaID,
		Nombre:      "Cta Cte",
		AplicaSaldo: model.BitBool(true),
	}
	f.tipos.tipos[f.efectivo.ID] = f.efectivo
	f.tipos.tipos[f.cuentaCte.ID] = f.cuentaCte

	return f
}

// pedidoPendiente seeds a pending order for the fixture client.
func (f *fixture) pedidoPendiente(total int64) *model.Pedido {
	p := &model.Pedido{
		ID:            uuid.New(),
		EmpresaID:     f.empresaID,
		ClienteID:     f.cliente.ID,
		VendedorID:    f.vendedorID,
		Total:         decimal.NewFromInt(total),
		Estado:        model.EstadoPendiente,
		Saldo:         decimal.Zero,
		FechaCreacion: time.Now(),
	}
	f.pedidos.pedidos[p.ID] = p
	return p
}
