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

type ZonasHandler struct{ svc service.ZonaService }

func NewZonasHandler(svc service.ZonaService) *ZonasHandler { return &ZonasHandler{svc: svc} }

// Listar godoc
// @Summary      Listar zonas de reparto
// @Tags         zonas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ZonaResponse
// @Router       /api/zonas [get]
func (h *ZonasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Alta de zona
// @Tags         zonas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearZonaRequest true "Nombre de la zona"
// @Success      201 {object} dto.ZonaResponse
// @Router       /api/zonas [post]
func (h *ZonasHandler) Crear(c *gin.Context) {
	var req dto.CrearZonaRequest
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
// @Summary      Renombrar zona
// @Tags         zonas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la zona"
// @Param        body body dto.ActualizarZonaRequest true "Nombre de la zona"
// @Success      200 {object} dto.ZonaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/zonas/{id} [put]
func (h *ZonasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarZonaRequest
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
// @Summary      Eliminar zona
// @Tags         zonas
// @Security     BearerAuth
// @Param        id path string true "UUID de la zona"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/zonas/{id} [delete]
func (h *ZonasHandler) Eliminar(c *gin.Context) {
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
