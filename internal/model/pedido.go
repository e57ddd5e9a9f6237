package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is a tarp/awning job tracked from creation through production,
// delivery and installation. Estado, Instalacion and Pago are independent
// status axes; display text and styles live in internal/status.
type Pedido struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio       string    `gorm:"uniqueIndex;not null"`
	Cliente     string    `gorm:"index;not null"`
	Telefono    string    `gorm:"not null"`
	Direccion   string    `gorm:"not null"`
	Descripcion string    `gorm:"not null"`
	Cantidad    int       `gorm:"not null;default:1"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// pendiente | autorizado | no-autorizado | produccion | listo | entregado | cancelado
	Estado string `gorm:"index;not null;default:'pendiente'"`
	// pendiente | realizada
	Instalacion string `gorm:"index;not null;default:'pendiente'"`
	// pendiente | parcial | pagado
	Pago string `gorm:"not null;default:'pendiente'"`

	FechaEntrega *time.Time `gorm:"type:date"`
	ArteAprobado bool       `gorm:"not null;default:false"`
	Vendedor     *string

	// Filled in from the entregas board when the installation is marked done.
	Instalador *string
	Recibio    *string

	FechaCreacion      time.Time `gorm:"autoCreateTime"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime"`

	Historial []HistorialPedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }
