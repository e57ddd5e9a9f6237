package service

import (
	"context"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/repository"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/status"
)

const recientesLimit = 5

type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	pedidos repository.PedidoRepository
	rentas  repository.RentaRepository
}

func NewDashboardService(pedidos repository.PedidoRepository, rentas repository.RentaRepository) DashboardService {
	return &dashboardService{pedidos: pedidos, rentas: rentas}
}

// Resumen computes the five counters and the latest pedidos fresh on every
// call. All-or-nothing: any failing count fails the request, no partials.
func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	hoy, err := s.pedidos.ContarCreadosHoy(ctx)
	if err != nil {
		return nil, err
	}
	pendientes, err := s.pedidos.ContarPorEstado(ctx, status.EstadoPendiente)
	if err != nil {
		return nil, err
	}
	produccion, err := s.pedidos.ContarPorEstado(ctx, status.EstadoProduccion)
	if err != nil {
		return nil, err
	}
	instalaciones, err := s.pedidos.ContarPorInstalacion(ctx, status.InstalacionPendiente)
	if err != nil {
		return nil, err
	}
	rentasActivas, err := s.rentas.ContarPorEstado(ctx, status.RentaActiva)
	if err != nil {
		return nil, err
	}

	recientes, err := s.pedidos.ListRecientes(ctx, recientesLimit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PedidoResponse, 0, len(recientes))
	for _, p := range recientes {
		data = append(data, *pedidoToResponse(&p))
	}

	return &dto.DashboardResponse{
		PedidosHoy:              hoy,
		PendientesAutorizacion:  pendientes,
		EnProduccion:            produccion,
		InstalacionesPendientes: instalaciones,
		RentasActivas:           rentasActivas,
		Recientes:               data,
	}, nil
}
