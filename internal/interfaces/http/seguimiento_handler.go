package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
)

// SeguimientoHandler reportes de avance y vistas calculadas.
type SeguimientoHandler struct {
	uc *seguimiento.ProgressUseCase
}

// NewSeguimientoHandler construye el handler.
func NewSeguimientoHandler(uc *seguimiento.ProgressUseCase) *SeguimientoHandler {
	return &SeguimientoHandler{uc: uc}
}

// CreateGeneral godoc
// @Summary      Reportar avance del contrato
// @Description  Cifras absolutas acumuladas; el último reporte reemplaza a los anteriores.
// @Tags         seguimiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                                  true  "ID del contrato"
// @Param        body  body  dto.CreateSeguimientoGeneralRequest  true  "avance_financiero, avance_fisico"
// @Success      201   {object}  dto.SeguimientoGeneralResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/seguimientos [post]
func (h *SeguimientoHandler) CreateGeneral(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSeguimientoGeneralRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSeguimientoGeneral(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetContratoProgress godoc
// @Summary      Avance del contrato
// @Tags         seguimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.ContratoProgressResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/progreso [get]
func (h *SeguimientoHandler) GetContratoProgress(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetContratoProgress(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetHistorial godoc
// @Summary      Línea de tiempo del contrato
// @Description  Adiciones, modificaciones y seguimientos en orden de registro.
// @Tags         seguimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.HistorialResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/historial [get]
func (h *SeguimientoHandler) GetHistorial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetContratoHistory(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateActividad godoc
// @Summary      Reportar avance de una actividad
// @Description  Cifras del periodo; el acumulado es la suma de toda la historia.
// @Tags         seguimiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                                    true  "ID de la actividad"
// @Param        body  body  dto.CreateSeguimientoActividadRequest  true  "avance_fisico, costo_aproximado"
// @Success      201   {object}  dto.SeguimientoActividadResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/actividades/{id}/seguimientos [post]
func (h *SeguimientoHandler) CreateActividad(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSeguimientoActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSeguimientoActividad(c.Context(), Principal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetActividadProgress godoc
// @Summary      Avance acumulado de una actividad
// @Tags         seguimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.ActividadProgressResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id}/progreso [get]
func (h *SeguimientoHandler) GetActividadProgress(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetActividadProgress(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetCuoProgress godoc
// @Summary      Avance de las actividades de un frente de obra
// @Tags         seguimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cuo"
// @Success      200  {object}  dto.CuoProgressResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuos/{id}/progreso [get]
func (h *SeguimientoHandler) GetCuoProgress(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetCuoProgress(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
