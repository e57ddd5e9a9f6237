package repository

import (
	"context"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository defines the data access contract for pedidos.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Pedido, error)
	// ListParaEntrega returns pedidos with estado in (autorizado, listo,
	// produccion) OR instalacion pendiente — the fulfillment board subset.
	ListParaEntrega(ctx context.Context) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	// MaxFolioSuffix reads the highest numeric suffix among existing folios.
	// Callers run it inside the insert transaction; uniqueness still assumes
	// no concurrent creators racing the same read.
	MaxFolioSuffix(ctx context.Context, tx *gorm.DB) (int, error)

	ContarCreadosHoy(ctx context.Context) (int64, error)
	ContarPorEstado(ctx context.Context, estado string) (int64, error)
	ContarPorInstalacion(ctx context.Context, instalacion string) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var pedidos []model.Pedido

	q := r.db.WithContext(ctx).Model(&model.Pedido{})

	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Instalacion != "" {
		q = q.Where("instalacion = ?", filter.Instalacion)
	}
	if filter.Cliente != "" {
		q = q.Where("cliente ILIKE ?", "%"+filter.Cliente+"%")
	}
	if filter.Telefono != "" {
		q = q.Where("telefono ILIKE ?", "%"+filter.Telefono+"%")
	}

	err := q.Order("fecha_creacion DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListRecientes(ctx context.Context, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Order("fecha_creacion DESC").
		Limit(limit).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListParaEntrega(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("estado IN ? OR instalacion = ?",
			[]string{"autorizado", "listo", "produccion"}, "pendiente").
		Order("fecha_creacion DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Delete(&model.Pedido{}, id).Error
}

func (r *pedidoRepo) MaxFolioSuffix(ctx context.Context, tx *gorm.DB) (int, error) {
	var max int
	err := tx.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(NULLIF(split_part(folio, '-', 2), '')::int), 0) FROM pedidos`).
		Scan(&max).Error
	return max, err
}

func (r *pedidoRepo) ContarCreadosHoy(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("DATE(fecha_creacion) = CURRENT_DATE").
		Count(&total).Error
	return total, err
}

func (r *pedidoRepo) ContarPorEstado(ctx context.Context, estado string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("estado = ?", estado).
		Count(&total).Error
	return total, err
}

func (r *pedidoRepo) ContarPorInstalacion(ctx context.Context, instalacion string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("instalacion = ?", instalacion).
		Count(&total).Error
	return total, err
}
