package handler

import (
	"net/http"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type PushHandler struct{ svc service.PushService }

func NewPushHandler(svc service.PushService) *PushHandler { return &PushHandler{svc: svc} }

// VAPIDPublicKey godoc
// @Summary      Clave pública VAPID
// @Description  La PWA la necesita antes de suscribirse; no requiere token.
// @Tags         push
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/push/vapid-public-key [get]
func (h *PushHandler) VAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.svc.VAPIDPublicKey()})
}

// Suscribir godoc
// @Summary      Registrar suscripción push
// @Description  Upsert por endpoint: re-suscribirse refresca las claves.
// @Tags         push
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SuscripcionRequest true "PushSubscription del navegador"
// @Success      201
// @Router       /api/push/subscribe [post]
func (h *PushHandler) Suscribir(c *gin.Context) {
	var req dto.SuscripcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Suscribir(c.Request.Context(), middleware.EmpresaID(c), middleware.VendedorID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Desuscribir godoc
// @Summary      Eliminar suscripción push
// @Tags         push
// @Accept       json
// @Security     BearerAuth
// @Param        body body dto.DesuscripcionRequest true "Endpoint a eliminar"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/push/unsubscribe [post]
func (h *PushHandler) Desuscribir(c *gin.Context) {
	var req dto.DesuscripcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Desuscribir(c.Request.Context(), middleware.EmpresaID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Enviar godoc
// @Summary      Enviar notificación a toda la empresa
// @Description  Encola un job por suscripción; la entrega es asíncrona con reintentos y DLQ.
// @Tags         push
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.EnviarPushRequest true "Título, cuerpo y URL opcional"
// @Success      202 {object} map[string]int
// @Router       /api/push/send [post]
func (h *PushHandler) Enviar(c *gin.Context) {
	var req dto.EnviarPushRequest
	if !bindAndValidate(c, &req) {
		return
	}
	encoladas, err := h.svc.Enviar(c.Request.Context(), middleware.EmpresaID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encoladas": encoladas})
}

// Stats godoc
// @Summary      Métricas de push
// @Tags         push
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PushStatsResponse
// @Router       /api/push/stats [get]
func (h *PushHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
