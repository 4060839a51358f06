package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/infrastructure/postgres"
	apphttp "github.com/camivargas/cafestock-api/internal/interfaces/http"
	"github.com/camivargas/cafestock-api/internal/mirror"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

func changeEvent(table, action, id, name string, updatedAt time.Time) postgres.ChangeEvent {
	record := fmt.Sprintf(`{"id":%q,"name":%q,"updated_at":%q}`, id, name, updatedAt.Format(time.RFC3339Nano))
	return postgres.ChangeEvent{Table: table, Action: action, Record: json.RawMessage(record)}
}

func buildRealtimeApp(m *mirror.Mirror) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewRealtimeHandler(m)
	app.Get("/api/realtime/:table", handler.Table)
	return app
}

func TestRealtime_DevuelveLasFilasReplicadas(t *testing.T) {
	m := mirror.New(logger.NewNop())
	t0 := time.Now()
	m.Apply(changeEvent("items", "INSERT", "item-1", "Café", t0))
	m.Apply(changeEvent("items", "INSERT", "item-2", "Azúcar", t0))

	app := buildRealtimeApp(m)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/realtime/items", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.RealtimeTableResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "items", out.Table)
	assert.Equal(t, 2, out.Count)
	assert.Len(t, out.Rows, 2)
}

func TestRealtime_TablaDesconocidaRetorna404(t *testing.T) {
	app := buildRealtimeApp(mirror.New(logger.NewNop()))
	resp, err := app.Test(httptest.NewRequest("GET", "/api/realtime/facturas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Tras descartar la réplica (corte del listener) la lectura vuelve vacía en
// vez de servir filas viejas.
func TestRealtime_DespuesDeResetAllVuelveVacio(t *testing.T) {
	m := mirror.New(logger.NewNop())
	m.Apply(changeEvent("items", "INSERT", "item-1", "Café", time.Now()))
	m.ResetAll()

	app := buildRealtimeApp(m)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/realtime/items", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.RealtimeTableResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 0, out.Count)
	assert.Empty(t, out.Rows)
}
