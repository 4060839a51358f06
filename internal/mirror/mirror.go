// Package mirror mantiene una réplica en memoria de las tablas de inventario
// alimentada por las notificaciones del listener de PostgreSQL. El merge es
// por id con política last-write-wins por updated_at: un evento más viejo que
// la fila ya replicada se descarta; los DELETE siempre ganan.
package mirror

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/camivargas/cafestock-api/internal/infrastructure/postgres"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

// Row fila replicada: el JSON crudo de la notificación más el updated_at que
// decidió el merge.
type Row struct {
	Data      json.RawMessage
	UpdatedAt time.Time
}

// Mirror réplica en memoria por tabla. Seguro para lectura concurrente.
type Mirror struct {
	mu     sync.RWMutex
	tables map[string]map[string]Row
	log    *logger.Logger
}

// New construye un mirror vacío.
func New(log *logger.Logger) *Mirror {
	return &Mirror{
		tables: map[string]map[string]Row{},
		log:    log,
	}
}

// Apply incorpora un evento de cambio. Pensado como handler del listener:
//
//	listener := postgres.NewListener(pool, log, m.Apply, m.ResetAll)
func (m *Mirror) Apply(event postgres.ChangeEvent) {
	key, updatedAt, ok := recordMeta(event.Table, event.Record)
	if !ok {
		m.log.Warn().Str("table", event.Table).Msg("mirror: registro sin id, se descarta")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[event.Table]
	if !ok {
		rows = map[string]Row{}
		m.tables[event.Table] = rows
	}

	if event.Action == "DELETE" {
		delete(rows, key)
		return
	}
	if existing, ok := rows[key]; ok && updatedAt.Before(existing.UpdatedAt) {
		// Evento fuera de orden: la réplica ya tiene una versión más nueva.
		return
	}
	rows[key] = Row{Data: event.Record, UpdatedAt: updatedAt}
}

// Get devuelve la fila replicada de una tabla (ok=false si no está).
func (m *Mirror) Get(table, key string) (Row, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.tables[table][key]
	return row, ok
}

// List devuelve todas las filas replicadas de una tabla.
func (m *Mirror) List(table string) []Row {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := m.tables[table]
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}

// Len cantidad de filas replicadas de una tabla.
func (m *Mirror) Len(table string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[table])
}

// Reset descarta la réplica completa de una tabla (resincronización tras un
// corte del listener: se vuelve a cargar con una lectura completa).
func (m *Mirror) Reset(table string) {
	m.mu.Lock()
	delete(m.tables, table)
	m.mu.Unlock()
}

// ResetAll vacía la réplica entera. El listener lo invoca al perder la
// conexión: las notificaciones emitidas durante el corte se perdieron, y una
// réplica vacía es preferible a una que aparenta estar al día.
func (m *Mirror) ResetAll() {
	m.mu.Lock()
	m.tables = map[string]map[string]Row{}
	m.mu.Unlock()
	m.log.Info().Msg("mirror: réplica descartada, se reconstruye con las próximas notificaciones")
}

// recordMeta extrae la clave y el updated_at del registro. item_stock tiene
// clave compuesta item × sede; el resto usa la columna id.
func recordMeta(table string, record json.RawMessage) (string, time.Time, bool) {
	var fields struct {
		ID         string    `json:"id"`
		ItemID     string    `json:"item_id"`
		LocationID string    `json:"location_id"`
		UpdatedAt  time.Time `json:"updated_at"`
	}
	if err := json.Unmarshal(record, &fields); err != nil {
		return "", time.Time{}, false
	}
	if table == "item_stock" {
		if fields.ItemID == "" || fields.LocationID == "" {
			return "", time.Time{}, false
		}
		return fields.ItemID + "/" + fields.LocationID, fields.UpdatedAt, true
	}
	if fields.ID == "" {
		return "", time.Time{}, false
	}
	return fields.ID, fields.UpdatedAt, true
}
