package dto

import "github.com/shopspring/decimal"

// ClienteFilter is bound from the query string of GET /api/clientes.
type ClienteFilter struct {
	Busqueda string `form:"busqueda"` // name LIKE search
	ZonaID   string `form:"zona_id" validate:"omitempty,uuid"`
}

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Telefono  string  `json:"telefono"`
	Direccion string  `json:"direccion"`
	ZonaID    *string `json:"zona_id" validate:"omitempty,uuid"`
}

type ActualizarClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Telefono  string  `json:"telefono"`
	Direccion string  `json:"direccion"`
	ZonaID    *string `json:"zona_id" validate:"omitempty,uuid"`
	Activo    *bool   `json:"activo"`
}

type ClienteResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Telefono    string          `json:"telefono"`
	Direccion   string          `json:"direccion"`
	ZonaID      *string         `json:"zona_id"`
	Zona        string          `json:"zona,omitempty"`
	Saldo       decimal.Decimal `json:"saldo"`
	Retornables int             `json:"retornables"`
	Activo      bool            `json:"activo"`
}
