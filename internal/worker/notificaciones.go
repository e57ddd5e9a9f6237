package worker

// notificaciones.go — non-blocking notification queue.
// Services publish success/error notices with a single call; a small worker
// pool drains the queue into a capped "recientes" list that the UI polls via
// GET /v1/notificaciones. Publishing never blocks the request path.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotificaciones = "notificaciones:cola"
	KeyRecientes        = "notificaciones:recientes"

	maxRecientes = 50
)

// Notificacion is the envelope stored in Redis.
type Notificacion struct {
	Tipo    string `json:"tipo"` // exito | error
	Mensaje string `json:"mensaje"`
	Fecha   string `json:"fecha"` // ISO 8601
}

// Dispatcher enqueues notifications into the Redis queue.
// A nil Dispatcher (or nil client) silently drops — unit test mode.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

func (d *Dispatcher) PublicarExito(ctx context.Context, mensaje string) error {
	return d.publicar(ctx, "exito", mensaje)
}

func (d *Dispatcher) PublicarError(ctx context.Context, mensaje string) error {
	return d.publicar(ctx, "error", mensaje)
}

func (d *Dispatcher) publicar(ctx context.Context, tipo, mensaje string) error {
	if d == nil || d.rdb == nil {
		return nil
	}
	n := Notificacion{
		Tipo:    tipo,
		Mensaje: mensaje,
		Fecha:   time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueNotificaciones, data).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueNotificaciones).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			procesarNotificacion(ctx, rdb, result[1])
		}
	}
}

func procesarNotificacion(ctx context.Context, rdb *redis.Client, raw string) {
	var n Notificacion
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal notificacion")
		return
	}

	pipe := rdb.Pipeline()
	pipe.LPush(ctx, KeyRecientes, raw)
	pipe.LTrim(ctx, KeyRecientes, 0, maxRecientes-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Msg("failed to store notificacion")
		return
	}

	log.Info().Str("tipo", n.Tipo).Str("mensaje", n.Mensaje).Msg("notificacion")
}

// Recientes returns the retained notifications, newest first.
func Recientes(ctx context.Context, rdb *redis.Client) ([]Notificacion, error) {
	raws, err := rdb.LRange(ctx, KeyRecientes, 0, maxRecientes-1).Result()
	if err != nil {
		return nil, err
	}
	notificaciones := make([]Notificacion, 0, len(raws))
	for _, raw := range raws {
		var n Notificacion
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		notificaciones = append(notificaciones, n)
	}
	return notificaciones, nil
}
