package handler

import (
	"net/http"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type InformesHandler struct{ svc service.InformeService }

func NewInformesHandler(svc service.InformeService) *InformesHandler {
	return &InformesHandler{svc: svc}
}

// Ventas godoc
// @Summary      Informe de ventas
// @Description  tipo=resumen devuelve totales y top de productos; tipo=detallado desglosa por cliente. formato=pdf descarga el resumen en PDF.
// @Tags         informes
// @Produce      json
// @Security     BearerAuth
// @Param        fechaDesde query string true  "Fecha YYYY-MM-DD"
// @Param        fechaHasta query string true  "Fecha YYYY-MM-DD"
// @Param        tipo       query string false "resumen | detallado"
// @Param        formato    query string false "json | pdf"
// @Success      200 {object} dto.InformeResumenResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/informes/ventas [get]
func (h *InformesHandler) Ventas(c *gin.Context) {
	var filter dto.InformeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	empresaID := middleware.EmpresaID(c)
	ctx := c.Request.Context()

	if filter.Formato == "pdf" {
		path, err := h.svc.GenerarPDF(ctx, empresaID, filter.FechaDesde, filter.FechaHasta)
		if err != nil {
			respondError(c, err)
			return
		}
		c.FileAttachment(path, "informe_ventas.pdf")
		return
	}

	if filter.Tipo == "detallado" {
		resp, err := h.svc.Detallado(ctx, empresaID, filter.FechaDesde, filter.FechaHasta)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Resumen(ctx, empresaID, filter.FechaDesde, filter.FechaHasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EnviarPorEmail godoc
// @Summary      Enviar informe de ventas por email
// @Description  Genera el PDF del resumen y encola el envío; responde 202 sin esperar al SMTP.
// @Tags         informes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.EnviarInformeRequest true "Destinatario y rango"
// @Success      202 {object} map[string]string
// @Failure      400 {object} apierror.APIError
// @Router       /api/informes/ventas/email [post]
func (h *InformesHandler) EnviarPorEmail(c *gin.Context) {
	var req dto.EnviarInformeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarPorEmail(c.Request.Context(), middleware.EmpresaID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"mensaje": "Informe encolado para envío"})
}
