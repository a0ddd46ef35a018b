package dto

type CrearZonaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type ActualizarZonaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type ZonaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
