package handler

import (
	"net/http"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/apierror"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary      Resumen del panel
// @Description  Retorna los cinco contadores del panel y los pedidos más recientes. Todo o nada: sin resultados parciales.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.DashboardResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
