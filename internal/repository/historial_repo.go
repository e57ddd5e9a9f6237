package repository

import (
	"context"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistorialRepository is the append-only audit log for pedidos.
type HistorialRepository interface {
	Append(ctx context.Context, tx *gorm.DB, h *model.HistorialPedido) error
	// ListByPedido returns entries newest first.
	ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.HistorialPedido, error)
	// DeleteByPedidoTx removes a pedido's trail inside the delete transaction.
	// Only called when HISTORIAL_CASCADE_DELETE is enabled.
	DeleteByPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) error
}

type historialRepo struct{ db *gorm.DB }

func NewHistorialRepository(db *gorm.DB) HistorialRepository { return &historialRepo{db: db} }

func (r *historialRepo) Append(ctx context.Context, tx *gorm.DB, h *model.HistorialPedido) error {
	if tx == nil {
		tx = r.db
	}
	if h.Usuario == "" {
		h.Usuario = "Sistema"
	}
	return tx.WithContext(ctx).Create(h).Error
}

func (r *historialRepo) ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.HistorialPedido, error) {
	var entradas []model.HistorialPedido
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("fecha DESC").
		Find(&entradas).Error
	return entradas, err
}

func (r *historialRepo) DeleteByPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) error {
	return tx.Where("pedido_id = ?", pedidoID).Delete(&model.HistorialPedido{}).Error
}
