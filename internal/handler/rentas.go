package handler

import (
	"net/http"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/apierror"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentasHandler struct{ svc service.RentaService }

func NewRentasHandler(svc service.RentaService) *RentasHandler { return &RentasHandler{svc: svc} }

// Listar godoc
// @Summary      Listar rentas
// @Description  Retorna las rentas filtradas por estado, cliente y fecha de entrega.
// @Tags         rentas
// @Produce      json
// @Param        estado  query string false "pendiente | activa | vencida | devuelta"
// @Param        cliente query string false "Subcadena del nombre"
// @Param        fecha   query string false "Fecha de entrega YYYY-MM-DD"
// @Success      200 {object} dto.RentaListResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/rentas [get]
func (h *RentasHandler) Listar(c *gin.Context) {
	var filter dto.RentaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar rentas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Crear renta
// @Description  Crea una renta con folio RN consecutivo. Sin estado explícito, la renta nace "activa".
// @Tags         rentas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearRentaRequest true "Datos de la renta"
// @Success      201 {object} dto.RentaResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/rentas [post]
func (h *RentasHandler) Crear(c *gin.Context) {
	var req dto.CrearRentaRequest
	if !bindAndValidate(c, &req) {
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
// @Summary      Actualizar renta
// @Description  Aún no disponible: responde 501 sin tocar datos.
// @Tags         rentas
// @Param        id path string true "UUID de la renta"
// @Failure      501 {object} apierror.APIError
// @Router       /v1/rentas/{id} [put]
func (h *RentasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotImplemented, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary      Eliminar renta
// @Description  Aún no disponible: responde 501 sin tocar datos.
// @Tags         rentas
// @Param        id path string true "UUID de la renta"
// @Failure      501 {object} apierror.APIError
// @Router       /v1/rentas/{id} [delete]
func (h *RentasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotImplemented, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// PrevisualizarFolio godoc
// @Summary      Previsualizar el siguiente folio
// @Description  Retorna el folio RN tentativo para el modal de creación. No reserva nada.
// @Tags         rentas
// @Produce      json
// @Success      200 {object} dto.FolioPreviewResponse
// @Router       /v1/rentas/folio-preview [get]
func (h *RentasHandler) PrevisualizarFolio(c *gin.Context) {
	resp, err := h.svc.PrevisualizarFolio(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el folio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
