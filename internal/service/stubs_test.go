package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── stubPedidoRepo ────────────────────────────────────────────────────────────

// stubPedidoRepo is an in-memory PedidoRepository. Insertion order stands in
// for fecha_creacion ordering: newest first means reversed insertion order.
type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	orden   []uuid.UUID
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for _, existente := range r.pedidos {
		if existente.Folio == p.Folio {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.pedidos[p.ID] = p
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var out []model.Pedido
	for i := len(r.orden) - 1; i >= 0; i-- {
		p := r.pedidos[r.orden[i]]
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		if filter.Instalacion != "" && p.Instalacion != filter.Instalacion {
			continue
		}
		if filter.Cliente != "" && !strings.Contains(strings.ToLower(p.Cliente), strings.ToLower(filter.Cliente)) {
			continue
		}
		if filter.Telefono != "" && !strings.Contains(p.Telefono, filter.Telefono) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListRecientes(_ context.Context, limit int) ([]model.Pedido, error) {
	var out []model.Pedido
	for i := len(r.orden) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.pedidos[r.orden[i]])
	}
	return out, nil
}

func (r *stubPedidoRepo) ListParaEntrega(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for i := len(r.orden) - 1; i >= 0; i-- {
		p := r.pedidos[r.orden[i]]
		if p.Estado == "autorizado" || p.Estado == "listo" || p.Estado == "produccion" || p.Instalacion == "pendiente" {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	if _, ok := r.pedidos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) MaxFolioSuffix(_ context.Context, _ *gorm.DB) (int, error) {
	max := 0
	for _, p := range r.pedidos {
		if n := folioSuffix(p.Folio); n > max {
			max = n
		}
	}
	return max, nil
}

func (r *stubPedidoRepo) ContarCreadosHoy(_ context.Context) (int64, error) {
	return int64(len(r.pedidos)), nil
}

func (r *stubPedidoRepo) ContarPorEstado(_ context.Context, estado string) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.Estado == estado {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) ContarPorInstalacion(_ context.Context, instalacion string) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.Instalacion == instalacion {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// folioSuffix parses the numeric tail of "LN-00N" / "RN-00N".
func folioSuffix(folio string) int {
	parts := strings.SplitN(folio, "-", 2)
	if len(parts) != 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return n
}

// ── stubHistorialRepo ─────────────────────────────────────────────────────────

type stubHistorialRepo struct {
	entradas []model.HistorialPedido
}

func (r *stubHistorialRepo) Append(_ context.Context, _ *gorm.DB, h *model.HistorialPedido) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Usuario == "" {
		h.Usuario = "Sistema"
	}
	r.entradas = append(r.entradas, *h)
	return nil
}

func (r *stubHistorialRepo) ListByPedido(_ context.Context, pedidoID uuid.UUID) ([]model.HistorialPedido, error) {
	var out []model.HistorialPedido
	for i := len(r.entradas) - 1; i >= 0; i-- {
		if r.entradas[i].PedidoID == pedidoID {
			out = append(out, r.entradas[i])
		}
	}
	return out, nil
}

func (r *stubHistorialRepo) DeleteByPedidoTx(_ *gorm.DB, pedidoID uuid.UUID) error {
	var keep []model.HistorialPedido
	for _, h := range r.entradas {
		if h.PedidoID != pedidoID {
			keep = append(keep, h)
		}
	}
	r.entradas = keep
	return nil
}

var _ repository.HistorialRepository = (*stubHistorialRepo)(nil)

// acciones returns the historial acciones recorded for a pedido, oldest first.
func (r *stubHistorialRepo) acciones(pedidoID uuid.UUID) []string {
	var out []string
	for _, h := range r.entradas {
		if h.PedidoID == pedidoID {
			out = append(out, h.Accion)
		}
	}
	return out
}

// ── stubRentaRepo ─────────────────────────────────────────────────────────────

type stubRentaRepo struct {
	rentas map[uuid.UUID]*model.Renta
	orden  []uuid.UUID
}

func newStubRentaRepo() *stubRentaRepo {
	return &stubRentaRepo{rentas: make(map[uuid.UUID]*model.Renta)}
}

func (r *stubRentaRepo) Create(_ context.Context, _ *gorm.DB, renta *model.Renta) error {
	if renta.ID == uuid.Nil {
		renta.ID = uuid.New()
	}
	r.rentas[renta.ID] = renta
	r.orden = append(r.orden, renta.ID)
	return nil
}

func (r *stubRentaRepo) List(_ context.Context, filter dto.RentaFilter) ([]model.Renta, error) {
	var out []model.Renta
	for i := len(r.orden) - 1; i >= 0; i-- {
		renta := r.rentas[r.orden[i]]
		if filter.Estado != "" && renta.Estado != filter.Estado {
			continue
		}
		if filter.Cliente != "" && !strings.Contains(strings.ToLower(renta.Cliente), strings.ToLower(filter.Cliente)) {
			continue
		}
		out = append(out, *renta)
	}
	return out, nil
}

func (r *stubRentaRepo) MaxFolioSuffix(_ context.Context, _ *gorm.DB) (int, error) {
	max := 0
	for _, renta := range r.rentas {
		if n := folioSuffix(renta.Folio); n > max {
			max = n
		}
	}
	return max, nil
}

func (r *stubRentaRepo) ContarPorEstado(_ context.Context, estado string) (int64, error) {
	var n int64
	for _, renta := range r.rentas {
		if renta.Estado == estado {
			n++
		}
	}
	return n, nil
}

func (r *stubRentaRepo) DB() *gorm.DB { return nil }

var _ repository.RentaRepository = (*stubRentaRepo)(nil)

// folios returns the stored folios sorted ascending, for sequence assertions.
func (r *stubRentaRepo) folios() []string {
	var out []string
	for _, renta := range r.rentas {
		out = append(out, renta.Folio)
	}
	sort.Strings(out)
	return out
}

// ── stubNotificador ───────────────────────────────────────────────────────────

// stubNotificador records published notices instead of touching Redis.
type stubNotificador struct {
	exitos  []string
	errores []string
}

func (n *stubNotificador) PublicarExito(_ context.Context, mensaje string) error {
	n.exitos = append(n.exitos, mensaje)
	return nil
}

func (n *stubNotificador) PublicarError(_ context.Context, mensaje string) error {
	n.errores = append(n.errores, mensaje)
	return nil
}

var _ Notificador = (*stubNotificador)(nil)

// ── failure stubs ─────────────────────────────────────────────────────────────

var errConexion = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// caidoPedidoRepo simulates a backend outage on single-record reads.
type caidoPedidoRepo struct{ stubPedidoRepo }

func (r *caidoPedidoRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Pedido, error) {
	return nil, errConexion
}

// caidoCrearPedidoRepo fails the insert itself.
type caidoCrearPedidoRepo struct{ stubPedidoRepo }

func (r *caidoCrearPedidoRepo) Create(_ context.Context, _ *gorm.DB, _ *model.Pedido) error {
	return errConexion
}

// caidoHistorialRepo fails every append.
type caidoHistorialRepo struct{ stubHistorialRepo }

func (r *caidoHistorialRepo) Append(_ context.Context, _ *gorm.DB, _ *model.HistorialPedido) error {
	return errConexion
}
