package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
)

// EnvelopeHandler adiciones y modificaciones del contrato.
type EnvelopeHandler struct {
	uc *seguimiento.EnvelopeUseCase
}

// NewEnvelopeHandler construye el handler.
func NewEnvelopeHandler(uc *seguimiento.EnvelopeUseCase) *EnvelopeHandler {
	return &EnvelopeHandler{uc: uc}
}

// CreateAdicion godoc
// @Summary      Registrar adición presupuestal
// @Description  Suma valor_adicion al valor total del contrato en la misma transacción.
// @Tags         envolvente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del contrato"
// @Param        body  body  dto.CreateAdicionRequest  true  "valor_adicion, fecha, observaciones"
// @Success      201   {object}  dto.AdicionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/adiciones [post]
func (h *EnvelopeHandler) CreateAdicion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateAdicionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateAdicion(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateModificacion godoc
// @Summary      Registrar prórroga, suspensión o modificación
// @Description  PRORROGA y SUSPENSION mueven la fecha de terminación actual a fecha_final.
// @Tags         envolvente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del contrato"
// @Param        body  body  dto.CreateModificacionRequest  true  "tipo, fecha_inicio, fecha_final"
// @Success      201   {object}  dto.ModificacionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/modificaciones [post]
func (h *EnvelopeHandler) CreateModificacion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateModificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateModificacion(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
