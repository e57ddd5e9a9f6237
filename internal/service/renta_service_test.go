package service

import (
	"context"
	"testing"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRentaSvc() (RentaService, *stubRentaRepo) {
	repo := newStubRentaRepo()
	return NewRentaService(repo, nil, &stubNotificador{}), repo
}

func crearRentaReq(cliente string) dto.CrearRentaRequest {
	return dto.CrearRentaRequest{
		Cliente:         cliente,
		Telefono:        "81 2222 3344",
		Direccion:       "Camino Real 88",
		Articulo:        "Carpa 6x12m",
		FechaEntrega:    "2026-09-10",
		FechaDevolucion: "2026-09-13",
		Monto:           decimal.NewFromFloat(3500),
		Deposito:        true,
	}
}

func TestCrearRenta_AsignaFolioYDefaultActiva(t *testing.T) {
	svc, _ := buildRentaSvc()

	resp, err := svc.Crear(context.Background(), crearRentaReq("Salón Las Palmas"))
	require.NoError(t, err)
	assert.Equal(t, "RN-001", resp.Folio)
	assert.Equal(t, "activa", resp.Estado)
	assert.Equal(t, "Activa", resp.EstadoTexto)
	assert.Equal(t, "estado-autorizado", resp.EstadoClase)
	assert.True(t, resp.Deposito)
}

func TestCrearRenta_FolioConsecutivo(t *testing.T) {
	svc, repo := buildRentaSvc()

	for i := 0; i < 3; i++ {
		_, err := svc.Crear(context.Background(), crearRentaReq("Cliente"))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"RN-001", "RN-002", "RN-003"}, repo.folios())
}

func TestCrearRenta_EstadoExplicitoSeRespeta(t *testing.T) {
	svc, _ := buildRentaSvc()

	req := crearRentaReq("Cliente")
	req.Estado = "pendiente"
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pendiente", resp.Estado)
}

func TestActualizarYEliminarRenta_NoDisponibles(t *testing.T) {
	svc, repo := buildRentaSvc()

	_, err := svc.Crear(context.Background(), crearRentaReq("Cliente"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Actualizar(context.Background(), uuid.New()), ErrFuncionalidadNoDisponible)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), uuid.New()), ErrFuncionalidadNoDisponible)

	// Nothing changed underneath
	rentas, err := svc.Listar(context.Background(), dto.RentaFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, rentas.Total)
	assert.Len(t, repo.rentas, 1)
}

func TestPrevisualizarFolio_SinContadorArrancaEnUno(t *testing.T) {
	svc, _ := buildRentaSvc()

	// No Redis: the counter reads as 1 and the preview is the next one.
	resp, err := svc.PrevisualizarFolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RN-002", resp.Folio)
}

func TestListarRentas_FiltroPorEstado(t *testing.T) {
	svc, _ := buildRentaSvc()

	_, err := svc.Crear(context.Background(), crearRentaReq("A"))
	require.NoError(t, err)
	req := crearRentaReq("B")
	req.Estado = "devuelta"
	_, err = svc.Crear(context.Background(), req)
	require.NoError(t, err)

	resp, err := svc.Listar(context.Background(), dto.RentaFilter{Estado: "activa"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "A", resp.Data[0].Cliente)
}
