package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descargas del informe PDF y del historial en Excel.
type ReportHandler struct {
	uc *seguimiento.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *seguimiento.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ContratoPDF godoc
// @Summary      Informe de avance en PDF
// @Tags         informes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/informe.pdf [get]
func (h *ReportHandler) ContratoPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	b, filename, err := h.uc.ContratoPDF(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}

// HistorialExcel godoc
// @Summary      Historial del contrato en Excel
// @Tags         informes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/historial.xlsx [get]
func (h *ReportHandler) HistorialExcel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	b, filename, err := h.uc.HistorialExcel(c.Context(), Principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
