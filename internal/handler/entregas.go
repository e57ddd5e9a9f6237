package handler

import (
	"errors"
	"net/http"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/apierror"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntregasHandler struct{ svc service.EntregaService }

func NewEntregasHandler(svc service.EntregaService) *EntregasHandler {
	return &EntregasHandler{svc: svc}
}

// Listar godoc
// @Summary      Tablero de entregas
// @Description  Retorna los pedidos con trabajo de entrega o instalación pendiente, con su insignia de entrega.
// @Tags         entregas
// @Produce      json
// @Success      200 {object} dto.EntregaListResponse
// @Router       /v1/entregas [get]
func (h *EntregasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar entregas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar entrega e instalación
// @Description  Aplica el modal del tablero: marca entrega e instalación y registra el movimiento en el historial.
// @Tags         entregas
// @Accept       json
// @Produce      json
// @Param        id   path string                       true "UUID del pedido"
// @Param        body body dto.ActualizarEntregaRequest true "Estado de entrega e instalación"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.NotFoundError
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/entregas/{id} [post]
func (h *EntregasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/entregas.html"))
		return
	}
	var req dto.ActualizarEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/entregas.html"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar la entrega"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
