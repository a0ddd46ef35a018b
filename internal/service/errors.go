package service

import "errors"

// Sentinel errors decide the HTTP status in the handler layer.
var (
	// ErrNotFound covers both truly absent entities and entities owned by
	// another company — cross-tenant access must be indistinguishable from
	// absence (404, never 403).
	ErrNotFound = errors.New("no encontrado")

	// ErrEstadoInvalido: the order is not pendient (already delivered,
	// cancelled, or lost the settlement race).
	ErrEstadoInvalido = errors.New("el pedido no está pendiente")

	// ErrTipoPagoAplicaSaldo: direct client payments must use a payment type
	// that does NOT post to the running balance.
	ErrTipoPagoAplicaSaldo = errors.New("el tipo de pago aplica a cuenta corriente y no admite cobro directo")

	// ErrTipoPagoEnUso blocks deleting a payment type referenced by orders
	// or receipts.
	ErrTipoPagoEnUso = errors.New("el tipo de pago está en uso")

	// ErrCredenciales is returned on any login failure without detailing
	// which field was wrong.
	ErrCredenciales = errors.New("credenciales inválidas")

	// ErrRangoFechas: fechaDesde is after fechaHasta.
	ErrRangoFechas = errors.New("rango de fechas inválido")
)
