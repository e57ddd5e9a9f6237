package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// PedidoFilter is bound from the query string of GET /v1/pedidos.
// Text filters are case-insensitive substring matches; status filters are
// exact. All are combined with AND.
type PedidoFilter struct {
	Cliente     string `form:"cliente"`
	Telefono    string `form:"telefono"`
	Estado      string `form:"estado"      validate:"omitempty,oneof=pendiente autorizado no-autorizado produccion listo entregado cancelado"`
	Instalacion string `form:"instalacion" validate:"omitempty,oneof=pendiente realizada"`
	// Filter is the coarse status alias the dashboard links with
	// (?filter=pending|authorized|production). Resolved once at load.
	Filter string `form:"filter"`
}

var filterAlias = map[string]string{
	"pending":    "pendiente",
	"authorized": "autorizado",
	"production": "produccion",
}

// ResolverAlias maps the coarse navigation alias onto Estado. An explicit
// estado wins; unknown aliases are ignored.
func (f *PedidoFilter) ResolverAlias() {
	if f.Filter == "" || f.Estado != "" {
		return
	}
	if estado, ok := filterAlias[f.Filter]; ok {
		f.Estado = estado
	}
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarPedidoRequest is the body of POST /v1/pedidos and PUT /v1/pedidos/:id.
// The folio never travels in the request: it is assigned at creation and
// immutable afterwards.
type GuardarPedidoRequest struct {
	Cliente      string          `json:"cliente"       validate:"required"`
	Telefono     string          `json:"telefono"      validate:"required,telefono"`
	Direccion    string          `json:"direccion"     validate:"required"`
	Descripcion  string          `json:"descripcion"   validate:"required"`
	Cantidad     int             `json:"cantidad"      validate:"required,min=1"`
	Precio       decimal.Decimal `json:"precio"`
	Estado       string          `json:"estado"        validate:"omitempty,oneof=pendiente autorizado no-autorizado produccion listo entregado cancelado"`
	Instalacion  string          `json:"instalacion"   validate:"omitempty,oneof=pendiente realizada"`
	Pago         string          `json:"pago"          validate:"omitempty,oneof=pendiente parcial pagado"`
	FechaEntrega string          `json:"fecha_entrega" validate:"required,datetime=2006-01-02"`
	ArteAprobado bool            `json:"arte_aprobado"`
	Vendedor     *string         `json:"vendedor"`
}

// Normalizar clamps a negative precio to zero. It runs after binding and
// before validation, mirroring the form input that zeroes negative prices as
// they are typed.
func (r *GuardarPedidoRequest) Normalizar() {
	if r.Precio.IsNegative() {
		r.Precio = decimal.Zero
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID          string          `json:"id"`
	Folio       string          `json:"folio"`
	Cliente     string          `json:"cliente"`
	Telefono    string          `json:"telefono"`
	Direccion   string          `json:"direccion"`
	Descripcion string          `json:"descripcion"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`

	Estado           string `json:"estado"`
	EstadoTexto      string `json:"estado_texto"`
	EstadoClase      string `json:"estado_clase"`
	Instalacion      string `json:"instalacion"`
	InstalacionTexto string `json:"instalacion_texto"`
	InstalacionClase string `json:"instalacion_clase"`
	Pago             string `json:"pago"`
	PagoTexto        string `json:"pago_texto"`
	PagoClase        string `json:"pago_clase"`

	FechaEntrega string  `json:"fecha_entrega"`
	ArteAprobado bool    `json:"arte_aprobado"`
	Vendedor     *string `json:"vendedor"`
	Instalador   *string `json:"instalador"`
	Recibio      *string `json:"recibio"`

	FechaCreacion      string `json:"fecha_creacion"`
	FechaActualizacion string `json:"fecha_actualizacion"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int              `json:"total"`
}

type HistorialEntry struct {
	Accion  string `json:"accion"`
	Usuario string `json:"usuario"`
	Fecha   string `json:"fecha"`
}

// PedidoDetalleResponse adds the audit trail and the canonical deep link the
// detail screen encodes as a QR code.
type PedidoDetalleResponse struct {
	PedidoResponse
	Historial []HistorialEntry `json:"historial"`
	Enlace    string           `json:"enlace"`
}
