package model

import (
	"time"

	"github.com/google/uuid"
)

// HistorialPedido is an append-only audit line attached to a pedido.
// Rows are never updated or deleted, except for the optional cascade when the
// owning pedido is removed (config HISTORIAL_CASCADE_DELETE).
type HistorialPedido struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID uuid.UUID `gorm:"type:uuid;index;not null"`
	Accion   string    `gorm:"not null"`
	Usuario  string    `gorm:"not null;default:'Sistema'"`
	Fecha    time.Time `gorm:"autoCreateTime"`
}

func (HistorialPedido) TableName() string { return "historial_pedidos" }
