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

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar pedidos
// @Description  Filtrable por cliente, fecha, zona, estado y búsqueda por nombre de cliente.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        cliente_id query string false "UUID del cliente"
// @Param        fecha      query string false "Fecha YYYY-MM-DD"
// @Param        zona_id    query string false "UUID de la zona"
// @Param        estado     query string false "pendient | entregad | anulado | all"
// @Param        busqueda   query string false "Búsqueda por nombre de cliente"
// @Success      200 {array} dto.PedidoResponse
// @Router       /api/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
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
// @Summary      Crear pedido
// @Description  Congela precios al momento de la creación y descuenta stock. Si el stock queda negativo el pedido se crea igual y la respuesta trae advertencias.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Cliente e items"
// @Success      201 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
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

// Items godoc
// @Summary      Items de un pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {array} dto.ItemPedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/pedidos/{id}/items [get]
func (h *PedidosHandler) Items(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerItems(c.Request.Context(), middleware.EmpresaID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de un pedido (sin entrega)
// @Description  Solo transiciones administrativas (anulado). La entrega va por /entregar.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del pedido"
// @Param        body body dto.CambiarEstadoRequest true "Nuevo estado"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /api/pedidos/{id}/estado [put]
func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), middleware.EmpresaID(c), middleware.VendedorID(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Entregar godoc
// @Summary      Entregar pedido (liquidación)
// @Description  Transacción ACID: marca entregado, aplica saldo o registra cobro según el tipo de pago, y ajusta retornables.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del pedido"
// @Param        body body dto.EntregarPedidoRequest true "Datos de la entrega"
// @Success      200 {object} dto.PedidoResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /api/pedidos/{id}/entregar [post]
func (h *PedidosHandler) Entregar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.EntregarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Entregar(c.Request.Context(), middleware.EmpresaID(c), middleware.VendedorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
