package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Services publish unconditionally; without Redis (unit test mode) the
// dispatcher must drop silently instead of panicking.
func TestDispatcher_NilEsSeguro(t *testing.T) {
	var d *Dispatcher
	assert.NoError(t, d.PublicarExito(context.Background(), "Pedido creado correctamente"))
	assert.NoError(t, d.PublicarError(context.Background(), "algo falló"))

	sinCliente := NewDispatcher(nil)
	assert.NoError(t, sinCliente.PublicarExito(context.Background(), "ok"))
}
