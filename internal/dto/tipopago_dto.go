package dto

import "github.com/parinohernan/aqua-delivery-sub000/internal/model"

// CrearTipoPagoRequest accepts AplicaSaldo in any of the legacy wire shapes
// (bool, 0/1, "0"/"1", Node Buffer object) via model.BitBool.
type CrearTipoPagoRequest struct {
	Nombre      string        `json:"nombre" validate:"required"`
	AplicaSaldo model.BitBool `json:"aplica_saldo"`
}

type ActualizarTipoPagoRequest struct {
	Nombre      string        `json:"nombre" validate:"required"`
	AplicaSaldo model.BitBool `json:"aplica_saldo"`
}

type TipoPagoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	AplicaSaldo bool   `json:"aplica_saldo"`
}
