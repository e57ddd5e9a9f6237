package dto

// DashboardResponse is the aggregate for GET /v1/dashboard. The five counters
// are computed fresh on every call; there is no partial result — if any count
// fails the whole request fails.
type DashboardResponse struct {
	PedidosHoy              int64 `json:"pedidos_hoy"`
	PendientesAutorizacion  int64 `json:"pendientes_autorizacion"`
	EnProduccion            int64 `json:"en_produccion"`
	InstalacionesPendientes int64 `json:"instalaciones_pendientes"`
	RentasActivas           int64 `json:"rentas_activas"`

	Recientes []PedidoResponse `json:"recientes"`
}
