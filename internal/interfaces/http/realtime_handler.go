package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/mirror"
)

// mirroredTables tablas con trigger NOTIFY cuya réplica se expone por HTTP.
var mirroredTables = map[string]bool{
	"locations":    true,
	"categories":   true,
	"suppliers":    true,
	"items":        true,
	"item_stock":   true,
	"orders":       true,
	"transfers":    true,
	"team_members": true,
}

// RealtimeHandler expone la réplica en memoria alimentada por el listener.
// Solo se registra con el driver postgres.
type RealtimeHandler struct {
	m *mirror.Mirror
}

// NewRealtimeHandler construye el handler.
func NewRealtimeHandler(m *mirror.Mirror) *RealtimeHandler {
	return &RealtimeHandler{m: m}
}

// Table godoc
// @Summary      Leer la réplica en memoria de una tabla (driver postgres)
// @Tags         realtime
// @Security     Bearer
// @Produce      json
// @Param        table  path  string  true  "Tabla replicada"
// @Success      200  {object}  dto.RealtimeTableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/realtime/{table} [get]
func (h *RealtimeHandler) Table(c *fiber.Ctx) error {
	table := c.Params("table")
	if !mirroredTables[table] {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "tabla no replicada: " + table,
		})
	}
	replicated := h.m.List(table)
	rows := make([]json.RawMessage, 0, len(replicated))
	for _, r := range replicated {
		rows = append(rows, r.Data)
	}
	return c.JSON(dto.RealtimeTableResponse{Table: table, Count: len(rows), Rows: rows})
}
