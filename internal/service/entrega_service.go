package service

import (
	"context"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/status"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type EntregaService interface {
	Listar(ctx context.Context) (*dto.EntregaListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEntregaRequest) (*dto.PedidoResponse, error)
}

type entregaService struct {
	repo        repository.PedidoRepository
	historial   repository.HistorialRepository
	notificador Notificador
}

func NewEntregaService(repo repository.PedidoRepository, historial repository.HistorialRepository, notificador Notificador) EntregaService {
	return &entregaService{repo: repo, historial: historial, notificador: notificador}
}

// RequiereEntrega decides whether a pedido belongs on the fulfillment board:
// authorized or in-flight work, or anything still waiting for installation.
// Cancelled and fully delivered-and-installed pedidos drop off.
func RequiereEntrega(p *model.Pedido) bool {
	switch p.Estado {
	case status.EstadoAutorizado, status.EstadoListo, status.EstadoProduccion:
		return true
	}
	return p.Instalacion == status.InstalacionPendiente
}

func (s *entregaService) Listar(ctx context.Context) (*dto.EntregaListResponse, error) {
	pedidos, err := s.repo.ListParaEntrega(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EntregaItem, 0, len(pedidos))
	for _, p := range pedidos {
		if !RequiereEntrega(&p) {
			continue
		}
		texto, clase := entregaBadge(p.Estado)
		data = append(data, dto.EntregaItem{
			PedidoResponse: *pedidoToResponse(&p),
			EntregaTexto:   texto,
			EntregaClase:   clase,
		})
	}
	return &dto.EntregaListResponse{Data: data, Total: len(data)}, nil
}

// entregaBadge maps the pedido estado onto the delivery-axis badge of the
// board. Anything not delivered or ready reads as pending delivery.
func entregaBadge(estado string) (texto, clase string) {
	switch estado {
	case status.EstadoEntregado:
		return "Entregado", "estado-entregado"
	case status.EstadoListo:
		return "Listo para Entrega", "estado-listo"
	}
	return "Pendiente", "estado-pendiente"
}

// Actualizar applies the board's update modal: delivery marks the pedido
// "entregado", otherwise it stays "listo" awaiting handover. Crew names only
// persist when provided.
func (s *entregaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEntregaRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, clasificarBusqueda(err)
	}

	if req.Entrega == status.EstadoEntregado {
		pedido.Estado = status.EstadoEntregado
	} else {
		pedido.Estado = status.EstadoListo
	}
	pedido.Instalacion = req.Instalacion

	if req.Instalador != nil && *req.Instalador != "" {
		pedido.Instalador = req.Instalador
	}
	if req.Recibio != nil && *req.Recibio != "" {
		pedido.Recibio = req.Recibio
	}

	if err := s.repo.Update(ctx, pedido); err != nil {
		_ = s.notificador.PublicarError(ctx, "Error al actualizar la entrega")
		return nil, err
	}

	accion := "Estado actualizado"
	if req.Entrega == status.EstadoEntregado {
		accion = "Pedido marcado como entregado"
	}
	if req.Instalacion == status.InstalacionRealizada {
		accion += " e instalación completada"
	}
	if err := s.historial.Append(ctx, nil, &model.HistorialPedido{
		PedidoID: pedido.ID,
		Accion:   accion,
	}); err != nil {
		log.Error().Err(err).Str("pedido_id", pedido.ID.String()).Msg("failed to append historial")
	}

	_ = s.notificador.PublicarExito(ctx, "Estado actualizado correctamente")

	return pedidoToResponse(pedido), nil
}
