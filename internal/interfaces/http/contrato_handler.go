package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
)

// ContratoHandler registro de contratos y frentes de obra.
type ContratoHandler struct {
	uc *seguimiento.RegistryUseCase
}

// NewContratoHandler construye el handler.
func NewContratoHandler(uc *seguimiento.RegistryUseCase) *ContratoHandler {
	return &ContratoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato (solo ADMIN)
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContratoRequest  true  "datos del contrato"
// @Success      201   {object}  dto.ContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContratoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateContrato(c.Context(), Principal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar contratos visibles para el usuario
// @Description  ADMIN ve todos; SUPERVISOR solo los que supervisa.
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ContratoListResponse
// @Router       /api/contratos [get]
func (h *ContratoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.ListContratos(c.Context(), Principal(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.ContratoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContratoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetContrato(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCuo godoc
// @Summary      Registrar frente de obra en el contrato
// @Tags         obra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del contrato"
// @Param        body  body  dto.CreateCuoRequest  true  "datos del cuo"
// @Success      201   {object}  dto.CuoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/cuos [post]
func (h *ContratoHandler) CreateCuo(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateCuoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCuo(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCuos godoc
// @Summary      Listar frentes de obra del contrato
// @Tags         obra
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {array}   dto.CuoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/cuos [get]
func (h *ContratoHandler) ListCuos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListCuos(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateActividad godoc
// @Summary      Registrar actividad en un frente de obra
// @Tags         obra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del cuo"
// @Param        body  body  dto.CreateActividadRequest  true  "datos de la actividad"
// @Success      201   {object}  dto.ActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cuos/{id}/actividades [post]
func (h *ContratoHandler) CreateActividad(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateActividad(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
