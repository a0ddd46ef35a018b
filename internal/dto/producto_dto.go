package dto

import "github.com/shopspring/decimal"

type ProductoFilter struct {
	Busqueda         string `form:"busqueda"`
	IncluirInactivos bool   `form:"incluir_inactivos"`
}

type CrearProductoRequest struct {
	Descripcion  string          `json:"descripcion" validate:"required"`
	Precio       decimal.Decimal `json:"precio" validate:"required"`
	Stock        int             `json:"stock"`
	EsRetornable bool            `json:"es_retornable"`
	ImagenURL    *string         `json:"imagen_url" validate:"omitempty,url"`
}

type ActualizarProductoRequest struct {
	Descripcion  string          `json:"descripcion" validate:"required"`
	Precio       decimal.Decimal `json:"precio" validate:"required"`
	Stock        *int            `json:"stock"`
	EsRetornable *bool           `json:"es_retornable"`
	ImagenURL    *string         `json:"imagen_url" validate:"omitempty,url"`
}

type ProductoResponse struct {
	ID           string          `json:"id"`
	Descripcion  string          `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	EsRetornable bool            `json:"es_retornable"`
	Activo       bool            `json:"activo"`
	ImagenURL    *string         `json:"imagen_url"`
}
