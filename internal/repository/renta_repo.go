package repository

import (
	"context"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"

	"gorm.io/gorm"
)

// RentaRepository defines the data access contract for rentas.
// There is intentionally no Update/Delete: those operations are not available
// in the application yet (the service surfaces ErrFuncionalidadNoDisponible).
type RentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, renta *model.Renta) error
	List(ctx context.Context, filter dto.RentaFilter) ([]model.Renta, error)
	MaxFolioSuffix(ctx context.Context, tx *gorm.DB) (int, error)
	ContarPorEstado(ctx context.Context, estado string) (int64, error)
	DB() *gorm.DB
}

type rentaRepo struct{ db *gorm.DB }

func NewRentaRepository(db *gorm.DB) RentaRepository { return &rentaRepo{db: db} }

func (r *rentaRepo) DB() *gorm.DB { return r.db }

func (r *rentaRepo) Create(ctx context.Context, tx *gorm.DB, renta *model.Renta) error {
	return tx.WithContext(ctx).Create(renta).Error
}

func (r *rentaRepo) List(ctx context.Context, filter dto.RentaFilter) ([]model.Renta, error) {
	var rentas []model.Renta

	q := r.db.WithContext(ctx).Model(&model.Renta{})

	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Cliente != "" {
		q = q.Where("cliente ILIKE ?", "%"+filter.Cliente+"%")
	}
	if filter.Fecha != "" {
		q = q.Where("fecha_entrega = ?", filter.Fecha)
	}

	err := q.Order("fecha_creacion DESC").Find(&rentas).Error
	return rentas, err
}

func (r *rentaRepo) MaxFolioSuffix(ctx context.Context, tx *gorm.DB) (int, error) {
	var max int
	err := tx.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(NULLIF(split_part(folio, '-', 2), '')::int), 0) FROM rentas`).
		Scan(&max).Error
	return max, err
}

func (r *rentaRepo) ContarPorEstado(ctx context.Context, estado string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Renta{}).
		Where("estado = ?", estado).
		Count(&total).Error
	return total, err
}
