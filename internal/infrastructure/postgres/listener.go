package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camivargas/cafestock-api/pkg/logger"
)

// NotifyChannel canal de LISTEN/NOTIFY que emiten los triggers de las tablas
// de inventario.
const NotifyChannel = "inventory_changes"

// ChangeEvent payload de una notificación: tabla afectada, acción
// (INSERT/UPDATE/DELETE) y la fila como JSON crudo (la fila vieja en DELETE).
type ChangeEvent struct {
	Table  string          `json:"table"`
	Action string          `json:"action"`
	Record json.RawMessage `json:"record"`
}

// ChangeHandler callback invocado por cada notificación recibida.
type ChangeHandler func(ChangeEvent)

// Listener mantiene una conexión dedicada en LISTEN sobre el canal de
// cambios y despacha cada notificación al handler. Ante un corte se
// reconecta con backoff; las notificaciones emitidas durante el corte se
// pierden, así que antes de cada reintento se invoca onDrop para que el
// consumidor descarte lo replicado en vez de quedarse con datos viejos.
type Listener struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	handler ChangeHandler
	onDrop  func()
}

// NewListener construye el listener; Run lo pone a escuchar. onDrop puede ser
// nil si al consumidor no le importan los huecos.
func NewListener(pool *pgxpool.Pool, log *logger.Logger, handler ChangeHandler, onDrop func()) *Listener {
	return &Listener{pool: pool, log: log, handler: handler, onDrop: onDrop}
}

// Run bloquea escuchando notificaciones hasta que el contexto se cancele.
// Pensado para correr en su propia goroutine.
func (l *Listener) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Dur("retry_in", backoff).Msg("listener: conexión perdida, reintentando")
			if l.onDrop != nil {
				l.onDrop()
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		return
	}
}

func (l *Listener) listen(ctx context.Context) error {
	poolConn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer poolConn.Release()

	conn := poolConn.Conn()
	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		return err
	}
	l.log.Info().Str("channel", NotifyChannel).Msg("listener: escuchando cambios de inventario")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		var event ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			l.log.Warn().Err(err).Str("payload", notification.Payload).Msg("listener: payload ilegible, se descarta")
			continue
		}
		l.handler(event)
	}
}
