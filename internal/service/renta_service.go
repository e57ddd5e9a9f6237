package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/status"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrFuncionalidadNoDisponible marks operations that the screens expose but the
// backend has not shipped yet. Handlers answer 501 with a fixed message so the
// UI can show it verbatim.
var ErrFuncionalidadNoDisponible = errors.New("Funcionalidad en desarrollo")

// KeyContadorRentas is the Redis counter behind the folio preview shown in the
// creation modal. It is advisory only: the authoritative folio is computed from
// the table inside the insert transaction.
const KeyContadorRentas = "contador_rentas"

type RentaService interface {
	Listar(ctx context.Context, filter dto.RentaFilter) (*dto.RentaListResponse, error)
	Crear(ctx context.Context, req dto.CrearRentaRequest) (*dto.RentaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	PrevisualizarFolio(ctx context.Context) (*dto.FolioPreviewResponse, error)
}

type rentaService struct {
	repo        repository.RentaRepository
	rdb         *redis.Client
	notificador Notificador
}

func NewRentaService(repo repository.RentaRepository, rdb *redis.Client, notificador Notificador) RentaService {
	return &rentaService{repo: repo, rdb: rdb, notificador: notificador}
}

func (s *rentaService) Listar(ctx context.Context, filter dto.RentaFilter) (*dto.RentaListResponse, error) {
	rentas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.RentaResponse, 0, len(rentas))
	for _, r := range rentas {
		data = append(data, *rentaToResponse(&r))
	}
	return &dto.RentaListResponse{Data: data, Total: len(data)}, nil
}

// Crear assigns the RN folio inside the insert transaction, same scheme as
// pedidos. A renta created without an explicit estado starts "activa" — the
// modal is used at handover time, not at booking time.
func (s *rentaService) Crear(ctx context.Context, req dto.CrearRentaRequest) (*dto.RentaResponse, error) {
	renta := model.Renta{
		Cliente:          req.Cliente,
		Telefono:         req.Telefono,
		DireccionEntrega: req.Direccion,
		Articulo:         req.Articulo,
		FechaEntrega:     parseFecha(req.FechaEntrega),
		FechaDevolucion:  parseFecha(req.FechaDevolucion),
		MontoTotal:       req.Monto,
		Deposito:         req.Deposito,
		Estado:           valorODefecto(req.Estado, status.RentaActiva),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		n, err := s.repo.MaxFolioSuffix(ctx, tx)
		if err != nil {
			return err
		}
		renta.Folio = fmt.Sprintf("RN-00%d", n+1)
		return s.repo.Create(ctx, tx, &renta)
	})
	if txErr != nil {
		_ = s.notificador.PublicarError(ctx, "Error al crear la renta")
		return nil, txErr
	}

	// Keep the preview counter roughly in sync. Best effort: a failed INCR
	// only degrades the next preview, never the saved folio.
	if s.rdb != nil {
		_ = s.rdb.Incr(ctx, KeyContadorRentas).Err()
	}

	_ = s.notificador.PublicarExito(ctx, "Renta creada correctamente")

	return rentaToResponse(&renta), nil
}

// Actualizar is not implemented yet: the board links the action but the flow
// has not been built.
func (s *rentaService) Actualizar(ctx context.Context, id uuid.UUID) error {
	return ErrFuncionalidadNoDisponible
}

// Eliminar is not implemented yet, same as Actualizar.
func (s *rentaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return ErrFuncionalidadNoDisponible
}

// PrevisualizarFolio guesses the next RN folio from the Redis counter. The
// counter missing (fresh install, flushed cache) reads as 1. The guess can lag
// the table; the save path never trusts it.
func (s *rentaService) PrevisualizarFolio(ctx context.Context) (*dto.FolioPreviewResponse, error) {
	contador := 1
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, KeyContadorRentas).Result()
		if err == nil {
			if n, convErr := strconv.Atoi(raw); convErr == nil {
				contador = n
			}
		}
	}
	return &dto.FolioPreviewResponse{Folio: fmt.Sprintf("RN-00%d", contador+1)}, nil
}

func rentaToResponse(r *model.Renta) *dto.RentaResponse {
	fechaEntrega := ""
	if r.FechaEntrega != nil {
		fechaEntrega = r.FechaEntrega.Format("2006-01-02")
	}
	fechaDevolucion := ""
	if r.FechaDevolucion != nil {
		fechaDevolucion = r.FechaDevolucion.Format("2006-01-02")
	}
	return &dto.RentaResponse{
		ID:               r.ID.String(),
		Folio:            r.Folio,
		Cliente:          r.Cliente,
		Telefono:         r.Telefono,
		DireccionEntrega: r.DireccionEntrega,
		Articulo:         r.Articulo,
		FechaEntrega:     fechaEntrega,
		FechaDevolucion:  fechaDevolucion,
		MontoTotal:       r.MontoTotal,
		Deposito:         r.Deposito,
		Estado:           r.Estado,
		EstadoTexto:      status.RentaText(r.Estado),
		EstadoClase:      status.RentaClass(r.Estado),
		FechaCreacion:    r.FechaCreacion.Format("2006-01-02T15:04:05Z"),
	}
}
