// Package status is the single source of truth for status display text and
// badge style tags. Every screen consumes these tables instead of declaring
// its own copy. Unknown codes fall back to the "pendiente" pair of the axis.
package status

// Pedido estado codes.
const (
	EstadoPendiente    = "pendiente"
	EstadoAutorizado   = "autorizado"
	EstadoNoAutorizado = "no-autorizado"
	EstadoProduccion   = "produccion"
	EstadoListo        = "listo"
	EstadoEntregado    = "entregado"
	EstadoCancelado    = "cancelado"
)

// Instalación codes.
const (
	InstalacionPendiente = "pendiente"
	InstalacionRealizada = "realizada"
)

// Pago codes.
const (
	PagoPendiente = "pendiente"
	PagoParcial   = "parcial"
	PagoPagado    = "pagado"
)

// Renta estado codes.
const (
	RentaPendiente = "pendiente"
	RentaActiva    = "activa"
	RentaVencida   = "vencida"
	RentaDevuelta  = "devuelta"
)

var estadoTextos = map[string]string{
	EstadoPendiente:    "Pendiente",
	EstadoAutorizado:   "Autorizado",
	EstadoNoAutorizado: "No Autorizado",
	EstadoProduccion:   "En Producción",
	EstadoListo:        "Listo",
	EstadoEntregado:    "Entregado",
	EstadoCancelado:    "Cancelado",
}

var estadoClases = map[string]string{
	EstadoPendiente:    "estado-pendiente",
	EstadoAutorizado:   "estado-autorizado",
	EstadoNoAutorizado: "estado-no-autorizado",
	EstadoProduccion:   "estado-produccion",
	EstadoListo:        "estado-listo",
	EstadoEntregado:    "estado-entregado",
	EstadoCancelado:    "estado-cancelado",
}

var pagoTextos = map[string]string{
	PagoPendiente: "Pendiente",
	PagoParcial:   "Parcial",
	PagoPagado:    "Pagado",
}

var pagoClases = map[string]string{
	PagoPendiente: "estado-pendiente",
	PagoParcial:   "estado-produccion",
	PagoPagado:    "estado-entregado",
}

var rentaTextos = map[string]string{
	RentaPendiente: "Pendiente",
	RentaActiva:    "Activa",
	RentaVencida:   "Vencida",
	RentaDevuelta:  "Devuelta",
}

var rentaClases = map[string]string{
	RentaPendiente: "estado-pendiente",
	RentaActiva:    "estado-autorizado",
	RentaVencida:   "estado-no-autorizado",
	RentaDevuelta:  "estado-entregado",
}

func EstadoText(code string) string {
	if t, ok := estadoTextos[code]; ok {
		return t
	}
	return estadoTextos[EstadoPendiente]
}

func EstadoClass(code string) string {
	if c, ok := estadoClases[code]; ok {
		return c
	}
	return estadoClases[EstadoPendiente]
}

func InstalacionText(code string) string {
	if code == InstalacionRealizada {
		return "Instalada"
	}
	return "Pendiente"
}

func InstalacionClass(code string) string {
	if code == InstalacionRealizada {
		return "instalacion-instalada"
	}
	return "instalacion-pendiente"
}

func PagoText(code string) string {
	if t, ok := pagoTextos[code]; ok {
		return t
	}
	return pagoTextos[PagoPendiente]
}

func PagoClass(code string) string {
	if c, ok := pagoClases[code]; ok {
		return c
	}
	return pagoClases[PagoPendiente]
}

func RentaText(code string) string {
	if t, ok := rentaTextos[code]; ok {
		return t
	}
	return rentaTextos[RentaPendiente]
}

func RentaClass(code string) string {
	if c, ok := rentaClases[code]; ok {
		return c
	}
	return rentaClases[RentaPendiente]
}
