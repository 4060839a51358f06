package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/camivargas/cafestock-api/internal/application/reports"
)

// ReportHandler genera reportes PDF del inventario (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Descargar el reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
