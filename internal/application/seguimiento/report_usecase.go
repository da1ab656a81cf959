package seguimiento

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// ReportUseCase genera el informe PDF y la exportación Excel de un contrato.
type ReportUseCase struct {
	progress *ProgressUseCase
	pdf      ContratoPDFGenerator
	exporter HistorialExporter
	clock    func() time.Time
}

// NewReportUseCase construye el caso de uso reutilizando los cálculos de ProgressUseCase.
func NewReportUseCase(progress *ProgressUseCase, pdf ContratoPDFGenerator, exporter HistorialExporter) *ReportUseCase {
	return &ReportUseCase{progress: progress, pdf: pdf, exporter: exporter, clock: time.Now}
}

// ContratoPDF devuelve (pdfBytes, filename, nil) con el informe de avance del contrato.
func (uc *ReportUseCase) ContratoPDF(ctx context.Context, p access.Principal, contratoID int64) ([]byte, string, error) {
	data, err := uc.collect(ctx, p, contratoID, true)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateContratoPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar informe: %w", err)
	}
	return b, fmt.Sprintf("informe-%s.pdf", fileSafe(data.Contrato)), nil
}

// HistorialExcel devuelve (xlsxBytes, filename, nil) con la línea de tiempo del contrato.
func (uc *ReportUseCase) HistorialExcel(ctx context.Context, p access.Principal, contratoID int64) ([]byte, string, error) {
	data, err := uc.collect(ctx, p, contratoID, false)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.exporter.ExportHistorial(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("excel: exportar historial: %w", err)
	}
	return b, fmt.Sprintf("historial-%s.xlsx", fileSafe(data.Contrato)), nil
}

func (uc *ReportUseCase) collect(ctx context.Context, p access.Principal, contratoID int64, conCuos bool) (*ContratoReportData, error) {
	c, err := loadContrato(ctx, uc.progress.repos.Contratos, p, contratoID)
	if err != nil {
		return nil, err
	}
	estado, err := uc.progress.estadoContrato(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	eventos, err := uc.progress.historial(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	data := &ContratoReportData{
		Contrato:    c,
		Progreso:    estado,
		Historial:   eventos,
		GeneradoEn:  uc.clock(),
		GeneradoPor: p.Cedula,
	}
	if !conCuos {
		return data, nil
	}
	cuos, err := uc.progress.repos.Cuos.ListByContrato(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("listar cuos: %w", err)
	}
	for _, cuo := range cuos {
		r, err := uc.progress.cuoReport(ctx, cuo)
		if err != nil {
			return nil, err
		}
		data.Cuos = append(data.Cuos, r)
	}
	return data, nil
}

func fileSafe(c *entity.Contrato) string {
	out := make([]rune, 0, len(c.NumeroContrato))
	for _, r := range c.NumeroContrato {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return fmt.Sprintf("%d", c.ID)
	}
	return string(out)
}
