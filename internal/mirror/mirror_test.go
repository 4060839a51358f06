package mirror_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/internal/infrastructure/postgres"
	"github.com/camivargas/cafestock-api/internal/mirror"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

func event(table, action, id, name string, updatedAt time.Time) postgres.ChangeEvent {
	record := fmt.Sprintf(`{"id":%q,"name":%q,"updated_at":%q}`, id, name, updatedAt.Format(time.RFC3339Nano))
	return postgres.ChangeEvent{Table: table, Action: action, Record: json.RawMessage(record)}
}

func TestApply_InsertYUpdate(t *testing.T) {
	m := mirror.New(logger.NewNop())
	t0 := time.Now()

	m.Apply(event("items", "INSERT", "item-1", "Café", t0))
	m.Apply(event("items", "UPDATE", "item-1", "Café premium", t0.Add(time.Second)))

	row, ok := m.Get("items", "item-1")
	require.True(t, ok)
	assert.Contains(t, string(row.Data), "Café premium")
	assert.Equal(t, 1, m.Len("items"))
}

// Last-write-wins: un evento con updated_at más viejo que la fila replicada
// se descarta (llegó fuera de orden).
func TestApply_EventoViejoSeDescarta(t *testing.T) {
	m := mirror.New(logger.NewNop())
	t0 := time.Now()

	m.Apply(event("items", "UPDATE", "item-1", "versión nueva", t0.Add(time.Minute)))
	m.Apply(event("items", "UPDATE", "item-1", "versión vieja", t0))

	row, ok := m.Get("items", "item-1")
	require.True(t, ok)
	assert.Contains(t, string(row.Data), "versión nueva")
}

// Los DELETE siempre ganan, sin importar el updated_at del registro.
func TestApply_DeleteGana(t *testing.T) {
	m := mirror.New(logger.NewNop())
	t0 := time.Now()

	m.Apply(event("items", "INSERT", "item-1", "Café", t0.Add(time.Minute)))
	m.Apply(event("items", "DELETE", "item-1", "Café", t0))

	_, ok := m.Get("items", "item-1")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len("items"))
}

// item_stock usa clave compuesta item × sede.
func TestApply_ClaveCompuestaItemStock(t *testing.T) {
	m := mirror.New(logger.NewNop())
	record := json.RawMessage(`{"item_id":"item-1","location_id":"loc-centro","quantity":"5","updated_at":"2026-08-01T10:00:00Z"}`)
	m.Apply(postgres.ChangeEvent{Table: "item_stock", Action: "INSERT", Record: record})

	_, ok := m.Get("item_stock", "item-1/loc-centro")
	assert.True(t, ok)
}

func TestApply_RegistroSinIdSeDescarta(t *testing.T) {
	m := mirror.New(logger.NewNop())
	m.Apply(postgres.ChangeEvent{Table: "items", Action: "INSERT", Record: json.RawMessage(`{"name":"sin id"}`)})
	assert.Equal(t, 0, m.Len("items"))
}

func TestReset_DescartaLaTabla(t *testing.T) {
	m := mirror.New(logger.NewNop())
	m.Apply(event("items", "INSERT", "item-1", "Café", time.Now()))
	m.Reset("items")
	assert.Equal(t, 0, m.Len("items"))
}

// Tras un corte del listener la réplica entera se descarta (las
// notificaciones perdidas no se recuperan) y se reconstruye con los eventos
// que sigan llegando.
func TestResetAll_VaciaLaReplicaYSigueAplicando(t *testing.T) {
	m := mirror.New(logger.NewNop())
	t0 := time.Now()
	m.Apply(event("items", "INSERT", "item-1", "Café", t0))
	m.Apply(event("locations", "INSERT", "loc-1", "Sede Centro", t0))

	m.ResetAll()

	assert.Equal(t, 0, m.Len("items"))
	assert.Equal(t, 0, m.Len("locations"))

	m.Apply(event("items", "INSERT", "item-2", "Azúcar", t0.Add(time.Second)))
	assert.Equal(t, 1, m.Len("items"))
}
