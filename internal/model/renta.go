package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Renta is a time-bounded equipment loan. It has no relationship to Pedido.
type Renta struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio            string    `gorm:"uniqueIndex;not null"`
	Cliente          string    `gorm:"index;not null"`
	Telefono         string    `gorm:"not null"`
	DireccionEntrega string    `gorm:"not null"`
	Articulo         string    `gorm:"not null"`

	FechaEntrega    *time.Time `gorm:"type:date"`
	FechaDevolucion *time.Time `gorm:"type:date"`

	MontoTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Deposito   bool            `gorm:"not null;default:false"`

	// pendiente | activa | vencida | devuelta
	Estado string `gorm:"index;not null;default:'pendiente'"`

	FechaCreacion      time.Time `gorm:"autoCreateTime"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime"`
}

func (Renta) TableName() string { return "rentas" }
