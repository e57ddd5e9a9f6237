package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/infra"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/status"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrPedidoNoEncontrado signals a lookup miss so handlers can answer 404 with
// a redirect hint instead of a generic 400.
var ErrPedidoNoEncontrado = errors.New("Pedido no encontrado")

type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.PedidoDetalleResponse, error)
	Crear(ctx context.Context, req dto.GuardarPedidoRequest) (*dto.PedidoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarPedidoRequest) (*dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// ExportarCSV renders the current filtered list as a comma-delimited file.
	// Returns the file content and the suggested download name.
	ExportarCSV(ctx context.Context, filter dto.PedidoFilter) ([]byte, string, error)
	// GenerarFicha writes the printable PDF sheet and returns its path.
	GenerarFicha(ctx context.Context, id uuid.UUID) (string, error)
}

// Notificador is the slice of the worker dispatcher the services need.
// *worker.Dispatcher satisfies it; tests substitute a recorder.
type Notificador interface {
	PublicarExito(ctx context.Context, mensaje string) error
	PublicarError(ctx context.Context, mensaje string) error
}

var _ Notificador = (*worker.Dispatcher)(nil)

type pedidoService struct {
	repo        repository.PedidoRepository
	historial   repository.HistorialRepository
	notificador Notificador

	domain           string
	fichaStoragePath string
	cascadeHistorial bool
}

func NewPedidoService(
	repo repository.PedidoRepository,
	historial repository.HistorialRepository,
	notificador Notificador,
	domain, fichaStoragePath string,
	cascadeHistorial bool,
) PedidoService {
	return &pedidoService{
		repo:             repo,
		historial:        historial,
		notificador:      notificador,
		domain:           domain,
		fichaStoragePath: fichaStoragePath,
		cascadeHistorial: cascadeHistorial,
	}
}

// clasificarBusqueda keeps lookup misses and backend failures distinct: only a
// genuine missing row becomes ErrPedidoNoEncontrado, anything else (a dropped
// connection, a timeout) propagates so the handler answers 500, not 404.
func clasificarBusqueda(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPedidoNoEncontrado
	}
	return err
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Listar ────────────────────────────────────────────────────────────────────

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	filter.ResolverAlias()
	pedidos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		data = append(data, *pedidoToResponse(&p))
	}
	return &dto.PedidoListResponse{Data: data, Total: len(data)}, nil
}

// ── ObtenerDetalle ────────────────────────────────────────────────────────────

func (s *pedidoService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.PedidoDetalleResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, clasificarBusqueda(err)
	}

	entradas, err := s.historial.ListByPedido(ctx, id)
	if err != nil {
		return nil, err
	}
	historial := make([]dto.HistorialEntry, 0, len(entradas))
	for _, h := range entradas {
		historial = append(historial, dto.HistorialEntry{
			Accion:  h.Accion,
			Usuario: h.Usuario,
			Fecha:   h.Fecha.Format("2006-01-02T15:04:05Z"),
		})
	}

	return &dto.PedidoDetalleResponse{
		PedidoResponse: *pedidoToResponse(p),
		Historial:      historial,
		Enlace:         s.enlaceDetalle(p.ID),
	}, nil
}

// enlaceDetalle builds the canonical deep link the detail screen encodes as a
// QR code and the ficha prints in its footer.
func (s *pedidoService) enlaceDetalle(id uuid.UUID) string {
	return fmt.Sprintf("%s/detalle.html?id=%s", s.domain, id.String())
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// The folio is assigned inside the insert transaction: read the highest
// existing numeric suffix and add one. Two concurrent creators can still read
// the same suffix and collide on the unique index; the loser's transaction
// rolls back and the client retries. Acceptable at this write volume.

func (s *pedidoService) Crear(ctx context.Context, req dto.GuardarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido := model.Pedido{
		Cliente:      req.Cliente,
		Telefono:     req.Telefono,
		Direccion:    req.Direccion,
		Descripcion:  req.Descripcion,
		Cantidad:     req.Cantidad,
		Precio:       req.Precio,
		Estado:       valorODefecto(req.Estado, status.EstadoPendiente),
		Instalacion:  valorODefecto(req.Instalacion, status.InstalacionPendiente),
		Pago:         valorODefecto(req.Pago, status.PagoPendiente),
		FechaEntrega: parseFecha(req.FechaEntrega),
		ArteAprobado: req.ArteAprobado,
		Vendedor:     req.Vendedor,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		n, err := s.repo.MaxFolioSuffix(ctx, tx)
		if err != nil {
			return err
		}
		pedido.Folio = fmt.Sprintf("LN-00%d", n+1)

		if err := s.repo.Create(ctx, tx, &pedido); err != nil {
			return err
		}

		return s.historial.Append(ctx, tx, &model.HistorialPedido{
			PedidoID: pedido.ID,
			Accion:   "Pedido creado",
		})
	})
	if txErr != nil {
		_ = s.notificador.PublicarError(ctx, "Error al crear el pedido")
		return nil, txErr
	}

	_ = s.notificador.PublicarExito(ctx, "Pedido creado correctamente")

	return pedidoToResponse(&pedido), nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, clasificarBusqueda(err)
	}

	estadoAnterior := pedido.Estado

	// The folio is immutable: everything else comes from the request.
	pedido.Cliente = req.Cliente
	pedido.Telefono = req.Telefono
	pedido.Direccion = req.Direccion
	pedido.Descripcion = req.Descripcion
	pedido.Cantidad = req.Cantidad
	pedido.Precio = req.Precio
	pedido.Estado = valorODefecto(req.Estado, status.EstadoPendiente)
	pedido.Instalacion = valorODefecto(req.Instalacion, status.InstalacionPendiente)
	pedido.Pago = valorODefecto(req.Pago, status.PagoPendiente)
	pedido.FechaEntrega = parseFecha(req.FechaEntrega)
	pedido.ArteAprobado = req.ArteAprobado
	pedido.Vendedor = req.Vendedor

	if err := s.repo.Update(ctx, pedido); err != nil {
		_ = s.notificador.PublicarError(ctx, "Error al actualizar el pedido")
		return nil, err
	}

	if pedido.Estado != estadoAnterior {
		if err := s.historial.Append(ctx, nil, &model.HistorialPedido{
			PedidoID: pedido.ID,
			Accion:   "Estado actualizado",
		}); err != nil {
			log.Error().Err(err).Str("pedido_id", pedido.ID.String()).Msg("failed to append historial")
		}
	}

	_ = s.notificador.PublicarExito(ctx, "Pedido actualizado correctamente")

	return pedidoToResponse(pedido), nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return clasificarBusqueda(err)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Historial rows are kept by default: the audit trail outlives the
		// pedido unless the cascade is explicitly enabled.
		if s.cascadeHistorial {
			if err := s.historial.DeleteByPedidoTx(tx, id); err != nil {
				return err
			}
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if txErr != nil {
		_ = s.notificador.PublicarError(ctx, "Error al eliminar el pedido")
		return txErr
	}

	_ = s.notificador.PublicarExito(ctx, "Pedido eliminado correctamente")
	return nil
}

// ── ExportarCSV ───────────────────────────────────────────────────────────────
// Same filter semantics as Listar; an empty result still produces the header
// row so the download is never a zero-byte file.

func (s *pedidoService) ExportarCSV(ctx context.Context, filter dto.PedidoFilter) ([]byte, string, error) {
	filter.ResolverAlias()
	pedidos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Folio", "Cliente", "Teléfono", "Estado", "Instalación", "Fecha Entrega", "Precio"}); err != nil {
		return nil, "", err
	}

	for _, p := range pedidos {
		fechaEntrega := "-"
		if p.FechaEntrega != nil {
			fechaEntrega = p.FechaEntrega.Format("02/01/2006")
		}
		row := []string{
			p.Folio,
			p.Cliente,
			p.Telefono,
			status.EstadoText(p.Estado),
			status.InstalacionText(p.Instalacion),
			fechaEntrega,
			"$" + p.Precio.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	nombre := fmt.Sprintf("pedidos_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), nombre, nil
}

// ── GenerarFicha ──────────────────────────────────────────────────────────────

func (s *pedidoService) GenerarFicha(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", clasificarBusqueda(err)
	}
	entradas, err := s.historial.ListByPedido(ctx, id)
	if err != nil {
		return "", err
	}
	return infra.GenerarFichaPDF(p, entradas, s.enlaceDetalle(p.ID), s.fichaStoragePath)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func valorODefecto(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// parseFecha converts a validated YYYY-MM-DD string to a date pointer.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	fechaEntrega := ""
	if p.FechaEntrega != nil {
		fechaEntrega = p.FechaEntrega.Format("2006-01-02")
	}
	return &dto.PedidoResponse{
		ID:          p.ID.String(),
		Folio:       p.Folio,
		Cliente:     p.Cliente,
		Telefono:    p.Telefono,
		Direccion:   p.Direccion,
		Descripcion: p.Descripcion,
		Cantidad:    p.Cantidad,
		Precio:      p.Precio,

		Estado:           p.Estado,
		EstadoTexto:      status.EstadoText(p.Estado),
		EstadoClase:      status.EstadoClass(p.Estado),
		Instalacion:      p.Instalacion,
		InstalacionTexto: status.InstalacionText(p.Instalacion),
		InstalacionClase: status.InstalacionClass(p.Instalacion),
		Pago:             p.Pago,
		PagoTexto:        status.PagoText(p.Pago),
		PagoClase:        status.PagoClass(p.Pago),

		FechaEntrega: fechaEntrega,
		ArteAprobado: p.ArteAprobado,
		Vendedor:     p.Vendedor,
		Instalador:   p.Instalador,
		Recibio:      p.Recibio,

		FechaCreacion:      p.FechaCreacion.Format("2006-01-02T15:04:05Z"),
		FechaActualizacion: p.FechaActualizacion.Format("2006-01-02T15:04:05Z"),
	}
}
