package service

import (
	"context"
	"testing"

	"github.com/JUANSDL10/Lonas-Cadereyta/internal/dto"
	"github.com/JUANSDL10/Lonas-Cadereyta/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEntregaSvc() (EntregaService, *stubPedidoRepo, *stubHistorialRepo) {
	repo := newStubPedidoRepo()
	historial := &stubHistorialRepo{}
	return NewEntregaService(repo, historial, &stubNotificador{}), repo, historial
}

func seedPedido(t *testing.T, repo *stubPedidoRepo, folio, estado, instalacion string) *model.Pedido {
	t.Helper()
	p := &model.Pedido{Folio: folio, Cliente: "Cliente " + folio, Telefono: "81 0000 0000",
		Estado: estado, Instalacion: instalacion, Pago: "pendiente"}
	require.NoError(t, repo.Create(context.Background(), nil, p))
	return p
}

// ── Visibilidad del tablero ───────────────────────────────────────────────────

func TestRequiereEntrega_TodasLasCombinaciones(t *testing.T) {
	estados := []string{"pendiente", "autorizado", "no-autorizado", "produccion", "listo", "entregado", "cancelado"}
	instalaciones := []string{"pendiente", "realizada"}

	for _, estado := range estados {
		for _, instalacion := range instalaciones {
			p := &model.Pedido{Estado: estado, Instalacion: instalacion}
			esperado := estado == "autorizado" || estado == "listo" || estado == "produccion" ||
				instalacion == "pendiente"
			assert.Equal(t, esperado, RequiereEntrega(p), "estado=%s instalacion=%s", estado, instalacion)
		}
	}
}

func TestListarEntregas_ExcluyeTerminados(t *testing.T) {
	svc, repo, _ := buildEntregaSvc()

	seedPedido(t, repo, "LN-001", "autorizado", "pendiente")
	seedPedido(t, repo, "LN-002", "entregado", "realizada") // fully done: off the board
	seedPedido(t, repo, "LN-003", "cancelado", "realizada") // cancelled and installed: off
	seedPedido(t, repo, "LN-004", "entregado", "pendiente") // delivered but not installed: on

	resp, err := svc.Listar(context.Background())
	require.NoError(t, err)

	folios := make([]string, 0, len(resp.Data))
	for _, item := range resp.Data {
		folios = append(folios, item.Folio)
	}
	assert.ElementsMatch(t, []string{"LN-001", "LN-004"}, folios)
	assert.Equal(t, 2, resp.Total)
}

func TestListarEntregas_Insignias(t *testing.T) {
	svc, repo, _ := buildEntregaSvc()

	seedPedido(t, repo, "LN-001", "entregado", "pendiente")
	seedPedido(t, repo, "LN-002", "listo", "pendiente")
	seedPedido(t, repo, "LN-003", "produccion", "pendiente")

	resp, err := svc.Listar(context.Background())
	require.NoError(t, err)

	porFolio := make(map[string]dto.EntregaItem)
	for _, item := range resp.Data {
		porFolio[item.Folio] = item
	}
	assert.Equal(t, "Entregado", porFolio["LN-001"].EntregaTexto)
	assert.Equal(t, "estado-entregado", porFolio["LN-001"].EntregaClase)
	assert.Equal(t, "Listo para Entrega", porFolio["LN-002"].EntregaTexto)
	assert.Equal(t, "estado-listo", porFolio["LN-002"].EntregaClase)
	assert.Equal(t, "Pendiente", porFolio["LN-003"].EntregaTexto)
	assert.Equal(t, "estado-pendiente", porFolio["LN-003"].EntregaClase)
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func TestActualizarEntrega_MarcaEntregado(t *testing.T) {
	svc, repo, historial := buildEntregaSvc()
	p := seedPedido(t, repo, "LN-001", "autorizado", "pendiente")

	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarEntregaRequest{
		Entrega:     "entregado",
		Instalacion: "pendiente",
	})
	require.NoError(t, err)
	assert.Equal(t, "entregado", resp.Estado)
	assert.Equal(t, "pendiente", resp.Instalacion)
	assert.Equal(t, []string{"Pedido marcado como entregado"}, historial.acciones(p.ID))
}

func TestActualizarEntrega_EntregaPendienteQuedaListo(t *testing.T) {
	svc, repo, historial := buildEntregaSvc()
	p := seedPedido(t, repo, "LN-001", "produccion", "pendiente")

	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarEntregaRequest{
		Entrega:     "pendiente",
		Instalacion: "pendiente",
	})
	require.NoError(t, err)
	assert.Equal(t, "listo", resp.Estado)
	assert.Equal(t, []string{"Estado actualizado"}, historial.acciones(p.ID))
}

func TestActualizarEntrega_InstalacionCompletadaComponeMensaje(t *testing.T) {
	svc, repo, historial := buildEntregaSvc()
	p := seedPedido(t, repo, "LN-001", "listo", "pendiente")

	instalador := "Equipo A"
	recibio := "María"
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarEntregaRequest{
		Entrega:     "entregado",
		Instalacion: "realizada",
		Instalador:  &instalador,
		Recibio:     &recibio,
	})
	require.NoError(t, err)
	assert.Equal(t, "realizada", resp.Instalacion)
	require.NotNil(t, resp.Instalador)
	assert.Equal(t, "Equipo A", *resp.Instalador)
	require.NotNil(t, resp.Recibio)
	assert.Equal(t, "María", *resp.Recibio)
	assert.Equal(t, []string{"Pedido marcado como entregado e instalación completada"}, historial.acciones(p.ID))
}

func TestActualizarEntrega_SoloInstalacion(t *testing.T) {
	svc, repo, historial := buildEntregaSvc()
	p := seedPedido(t, repo, "LN-001", "listo", "pendiente")

	_, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarEntregaRequest{
		Entrega:     "pendiente",
		Instalacion: "realizada",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Estado actualizado e instalación completada"}, historial.acciones(p.ID))
}

func TestActualizarEntrega_CaidaDeBackendNoEsNoEncontrado(t *testing.T) {
	svc := NewEntregaService(&caidoPedidoRepo{}, &stubHistorialRepo{}, &stubNotificador{})

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarEntregaRequest{
		Entrega:     "entregado",
		Instalacion: "pendiente",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPedidoNoEncontrado)
}

func TestActualizarEntrega_NombresVaciosNoPersisten(t *testing.T) {
	svc, repo, _ := buildEntregaSvc()
	p := seedPedido(t, repo, "LN-001", "listo", "pendiente")

	vacio := ""
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarEntregaRequest{
		Entrega:     "entregado",
		Instalacion: "realizada",
		Instalador:  &vacio,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Instalador)
	assert.Nil(t, resp.Recibio)
}
