package dto

import "github.com/shopspring/decimal"

// RentaFilter is bound from the query string of GET /v1/rentas.
type RentaFilter struct {
	Estado  string `form:"estado"  validate:"omitempty,oneof=pendiente activa vencida devuelta"`
	Cliente string `form:"cliente"`
	Fecha   string `form:"fecha"   validate:"omitempty,datetime=2006-01-02"`
}

// CrearRentaRequest is the body of POST /v1/rentas (the new-rental modal).
type CrearRentaRequest struct {
	Cliente         string          `json:"cliente"          validate:"required"`
	Telefono        string          `json:"telefono"         validate:"required,telefono"`
	Direccion       string          `json:"direccion"        validate:"required"`
	Articulo        string          `json:"articulo"         validate:"required"`
	FechaEntrega    string          `json:"fecha_entrega"    validate:"required,datetime=2006-01-02"`
	FechaDevolucion string          `json:"fecha_devolucion" validate:"required,datetime=2006-01-02"`
	Monto           decimal.Decimal `json:"monto"`
	Deposito        bool            `json:"deposito"`
	// Empty estado defaults to "activa".
	Estado string `json:"estado" validate:"omitempty,oneof=pendiente activa vencida devuelta"`
}

type RentaResponse struct {
	ID               string          `json:"id"`
	Folio            string          `json:"folio"`
	Cliente          string          `json:"cliente"`
	Telefono         string          `json:"telefono"`
	DireccionEntrega string          `json:"direccion_entrega"`
	Articulo         string          `json:"articulo"`
	FechaEntrega     string          `json:"fecha_entrega"`
	FechaDevolucion  string          `json:"fecha_devolucion"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	Deposito         bool            `json:"deposito"`
	Estado           string          `json:"estado"`
	EstadoTexto      string          `json:"estado_texto"`
	EstadoClase      string          `json:"estado_clase"`
	FechaCreacion    string          `json:"fecha_creacion"`
}

type RentaListResponse struct {
	Data  []RentaResponse `json:"data"`
	Total int             `json:"total"`
}

// FolioPreviewResponse carries the non-authoritative folio guess shown in the
// creation modal. The real folio is assigned at save time.
type FolioPreviewResponse struct {
	Folio string `json:"folio"`
}
