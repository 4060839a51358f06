package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/application/usecase"
)

// SettingsHandler maneja la sede actual y las preferencias de la aplicación
// (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener preferencias (sede actual, tema y flags)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetCurrentLocation godoc
// @Summary      Fijar la sede actual
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.CurrentLocationRequest  true  "Sede a seleccionar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/current-location [put]
func (h *SettingsHandler) SetCurrentLocation(c *fiber.Ctx) error {
	var in dto.CurrentLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetCurrentLocation(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetFlag godoc
// @Summary      Escribir un flag de la aplicación
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        key   path  string           true  "Nombre del flag"  Enums(onboarding_complete, setup_complete)
// @Param        body  body  dto.FlagRequest  true  "Valor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/flags/{key} [put]
func (h *SettingsHandler) SetFlag(c *fiber.Ctx) error {
	var in dto.FlagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetFlag(c.Params("key"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetTheme godoc
// @Summary      Fijar la preferencia de tema
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ThemeRequest  true  "Tema"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/theme [put]
func (h *SettingsHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetTheme(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
