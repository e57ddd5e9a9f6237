package dto

// ActualizarEntregaRequest is the body of POST /v1/entregas/:id (the update
// modal on the delivery board). Instalador and Recibio only persist when the
// installation is marked "realizada" and the fields are filled in.
type ActualizarEntregaRequest struct {
	Entrega     string  `json:"entrega"     validate:"required,oneof=pendiente entregado"`
	Instalacion string  `json:"instalacion" validate:"required,oneof=pendiente realizada"`
	Instalador  *string `json:"instalador"`
	Recibio     *string `json:"recibio"`
}

// EntregaItem is a board row: a pedido plus its delivery-axis badge.
type EntregaItem struct {
	PedidoResponse
	EntregaTexto string `json:"entrega_texto"`
	EntregaClase string `json:"entrega_clase"`
}

type EntregaListResponse struct {
	Data  []EntregaItem `json:"data"`
	Total int           `json:"total"`
}
