package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/application/usecase"
)

// TeamHandler maneja las peticiones HTTP para el equipo (protegido).
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Create godoc
// @Summary      Crear miembro del equipo
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTeamMemberRequest  true  "Datos del miembro"
// @Success      201   {object}  dto.TeamMemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/team [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar miembros del equipo
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TeamMemberListResponse
// @Router       /api/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener miembro por ID
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del miembro"
// @Success      200  {object}  dto.TeamMemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/team/{id} [get]
func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar miembro del equipo
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del miembro"
// @Param        body  body  dto.UpdateTeamMemberRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TeamMemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/team/{id} [put]
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "miembro no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar miembro del equipo
// @Tags         team
// @Security     Bearer
// @Param        id  path  string  true  "ID del miembro"
// @Success      204
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
