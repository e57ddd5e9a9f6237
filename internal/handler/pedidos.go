package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/apierror"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler { return &PedidosHandler{svc: svc} }

// Listar godoc
// @Summary      Listar pedidos
// @Description  Retorna los pedidos filtrados por cliente, teléfono, estado e instalación, más recientes primero.
// @Tags         pedidos
// @Produce      json
// @Param        cliente     query string false "Subcadena del nombre (insensible a mayúsculas)"
// @Param        telefono    query string false "Subcadena del teléfono"
// @Param        estado      query string false "pendiente | autorizado | no-autorizado | produccion | listo | entregado | cancelado"
// @Param        instalacion query string false "pendiente | realizada"
// @Param        filter      query string false "Alias de navegación: pending | authorized | production"
// @Success      200 {object} dto.PedidoListResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerDetalle godoc
// @Summary      Detalle de un pedido
// @Description  Retorna el pedido con su historial y el enlace canónico a la pantalla de detalle.
// @Tags         pedidos
// @Produce      json
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} dto.PedidoDetalleResponse
// @Failure      404 {object} apierror.NotFoundError
// @Router       /v1/pedidos/{id} [get]
func (h *PedidosHandler) ObtenerDetalle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener el pedido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear pedido
// @Description  Crea un pedido con folio LN consecutivo y registra "Pedido creado" en el historial.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body body dto.GuardarPedidoRequest true "Datos del pedido"
// @Success      201 {object} dto.PedidoResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.GuardarPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	// Negative prices clamp to zero before validation, same as the form input.
	req.Normalizar()
	if !validarStruct(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar pedido
// @Description  Reemplaza los datos del pedido. El folio nunca cambia.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id   path string                   true "UUID del pedido"
// @Param        body body dto.GuardarPedidoRequest true "Datos del pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.NotFoundError
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/pedidos/{id} [put]
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
		return
	}
	var req dto.GuardarPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	req.Normalizar()
	if !validarStruct(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el pedido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar pedido
// @Description  Borra el pedido. El historial se conserva salvo que el cascade esté habilitado.
// @Tags         pedidos
// @Param        id path string true "UUID del pedido"
// @Success      204
// @Failure      404 {object} apierror.NotFoundError
// @Router       /v1/pedidos/{id} [delete]
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar el pedido"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportarCSV godoc
// @Summary      Exportar pedidos a CSV
// @Description  Descarga la lista filtrada como CSV. Una lista vacía produce solo el encabezado.
// @Tags         pedidos
// @Produce      text/csv
// @Param        cliente     query string false "Subcadena del nombre"
// @Param        telefono    query string false "Subcadena del teléfono"
// @Param        estado      query string false "Código de estado"
// @Param        instalacion query string false "pendiente | realizada"
// @Success      200 {string} string "archivo CSV"
// @Router       /v1/pedidos/export.csv [get]
func (h *PedidosHandler) ExportarCSV(c *gin.Context) {
	var filter dto.PedidoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	contenido, nombre, err := h.svc.ExportarCSV(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar pedidos"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nombre))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", contenido)
}

// GenerarFicha godoc
// @Summary      Ficha imprimible del pedido
// @Description  Genera la ficha PDF del pedido y la devuelve para impresión.
// @Tags         pedidos
// @Produce      application/pdf
// @Param        id path string true "UUID del pedido"
// @Success      200 {file} file
// @Failure      404 {object} apierror.NotFoundError
// @Router       /v1/pedidos/{id}/ficha [get]
func (h *PedidosHandler) GenerarFicha(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
		return
	}
	ruta, err := h.svc.GenerarFicha(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NewNotFound("Pedido no encontrado", "/pedidos.html"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar la ficha"))
		return
	}
	c.FileAttachment(ruta, "ficha.pdf")
}
