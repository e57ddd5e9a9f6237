package handler

import (
	"net/http"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/apierror"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type NotificacionesHandler struct{ rdb *redis.Client }

func NewNotificacionesHandler(rdb *redis.Client) *NotificacionesHandler {
	return &NotificacionesHandler{rdb: rdb}
}

// Listar godoc
// @Summary      Notificaciones recientes
// @Description  Retorna las últimas notificaciones procesadas, más nuevas primero.
// @Tags         notificaciones
// @Produce      json
// @Success      200 {array} worker.Notificacion
// @Router       /v1/notificaciones [get]
func (h *NotificacionesHandler) Listar(c *gin.Context) {
	notificaciones, err := worker.Recientes(c.Request.Context(), h.rdb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer notificaciones"))
		return
	}
	c.JSON(http.StatusOK, notificaciones)
}
