package handler

import (
	"net/http"

	"github.com/parinohernan/aqua-delivery-sub000/internal/apierror"
	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TiposDePagoHandler struct{ svc service.TipoPagoService }

func NewTiposDePagoHandler(svc service.TipoPagoService) *TiposDePagoHandler {
	return &TiposDePagoHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar tipos de pago
// @Tags         tipos-de-pago
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TipoPagoResponse
// @Router       /api/tiposdepago [get]
func (h *TiposDePagoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Alta de tipo de pago
// @Description  aplica_saldo acepta bool, 0/1, "0"/"1" o el objeto Buffer de clientes legados.
// @Tags         tipos-de-pago
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearTipoPagoRequest true "Nombre y aplica_saldo"
// @Success      201 {object} dto.TipoPagoResponse
// @Router       /api/tiposdepago [post]
func (h *TiposDePagoHandler) Crear(c *gin.Context) {
	var req dto.CrearTipoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.EmpresaID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Modificar tipo de pago
// @Tags         tipos-de-pago
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del tipo de pago"
// @Param        body body dto.ActualizarTipoPagoRequest true "Nombre y aplica_saldo"
// @Success      200 {object} dto.TipoPagoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/tiposdepago/{id} [put]
func (h *TiposDePagoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarTipoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.EmpresaID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar tipo de pago
// @Description  Falla con 409 si el tipo está referenciado por pedidos o pagos.
// @Tags         tipos-de-pago
// @Security     BearerAuth
// @Param        id path string true "UUID del tipo de pago"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /api/tiposdepago/{id} [delete]
func (h *TiposDePagoHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.EmpresaID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
