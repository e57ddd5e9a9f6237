package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumen_Contadores(t *testing.T) {
	pedidos := newStubPedidoRepo()
	rentas := newStubRentaRepo()
	svc := NewDashboardService(pedidos, rentas)

	seed := func(folio, estado, instalacion string) {
		require.NoError(t, pedidos.Create(context.Background(), nil, &model.Pedido{
			Folio: folio, Estado: estado, Instalacion: instalacion, Pago: "pendiente",
		}))
	}
	seed("LN-001", "pendiente", "pendiente")
	seed("LN-002", "pendiente", "realizada")
	seed("LN-003", "produccion", "pendiente")
	seed("LN-004", "entregado", "realizada")

	require.NoError(t, rentas.Create(context.Background(), nil, &model.Renta{Folio: "RN-001", Estado: "activa"}))
	require.NoError(t, rentas.Create(context.Background(), nil, &model.Renta{Folio: "RN-002", Estado: "devuelta"}))

	resp, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.PedidosHoy)
	assert.Equal(t, int64(2), resp.PendientesAutorizacion)
	assert.Equal(t, int64(1), resp.EnProduccion)
	assert.Equal(t, int64(2), resp.InstalacionesPendientes)
	assert.Equal(t, int64(1), resp.RentasActivas)
	assert.Len(t, resp.Recientes, 4)
}

func TestResumen_RecientesLimitadoACinco(t *testing.T) {
	pedidos := newStubPedidoRepo()
	rentas := newStubRentaRepo()
	svc := NewDashboardService(pedidos, rentas)

	for i := 0; i < 8; i++ {
		require.NoError(t, pedidos.Create(context.Background(), nil, &model.Pedido{
			Folio: string(rune('A'+i)), Estado: "pendiente", Instalacion: "pendiente", Pago: "pendiente",
		}))
	}

	resp, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Recientes, 5)
	// Newest first
	assert.Equal(t, "H", resp.Recientes[0].Folio)
}

// fallaRentaRepo makes the renta counter fail to exercise the all-or-nothing
// contract of the dashboard.
type fallaRentaRepo struct{ stubRentaRepo }

func (r *fallaRentaRepo) ContarPorEstado(_ context.Context, _ string) (int64, error) {
	return 0, errors.New("connection reset")
}

func TestResumen_TodoONada(t *testing.T) {
	pedidos := newStubPedidoRepo()
	rentas := &fallaRentaRepo{stubRentaRepo: *newStubRentaRepo()}
	svc := NewDashboardService(pedidos, rentas)

	_, err := svc.Resumen(context.Background())
	assert.Error(t, err)
}
