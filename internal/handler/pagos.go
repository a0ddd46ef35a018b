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

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// Listar godoc
// @Summary      Listar pagos
// @Tags         pagos
// @Produce      json
// @Security     BearerAuth
// @Param        cliente_id query string false "UUID del cliente"
// @Param        pedido_id  query string false "UUID del pedido"
// @Param        fecha      query string false "Fecha YYYY-MM-DD"
// @Success      200 {array} dto.PagoResponse
// @Router       /api/pagos [get]
func (h *PagosHandler) Listar(c *gin.Context) {
	var filter dto.PagoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.EmpresaID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Registrar recibo asociado a un pedido
// @Description  Solo registra el comprobante: no toca el saldo del cliente.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPagoRequest true "Datos del pago"
// @Success      201 {object} dto.PagoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/pagos [post]
func (h *PagosHandler) Crear(c *gin.Context) {
	var req dto.CrearPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.EmpresaID(c), middleware.VendedorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Corregir un recibo
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del pago"
// @Param        body body dto.ActualizarPagoRequest true "Monto y notas"
// @Success      200 {object} dto.PagoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/pagos/{id} [put]
func (h *PagosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarPagoRequest
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

// PagoCliente godoc
// @Summary      Cobro directo a cuenta corriente
// @Description  Baja el saldo del cliente y opcionalmente descuenta retornables devueltos, en una sola transacción. Rechaza tipos de pago que aplican saldo.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PagoClienteRequest true "Datos del cobro"
// @Success      201 {object} dto.PagoResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /api/pagos/cliente [post]
func (h *PagosHandler) PagoCliente(c *gin.Context) {
	var req dto.PagoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PagoCliente(c.Request.Context(), middleware.EmpresaID(c), middleware.VendedorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
