package seguimiento

import (
	"context"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza que la envolvente del contrato y el registro de la adición/modificación
// se persistan juntos o no se persistan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		contratoRepo repository.ContratoRepository,
		adicionRepo repository.AdicionRepository,
		modificacionRepo repository.ModificacionRepository,
	) error) error
}

// Repositories agrupa los puertos de lectura/escritura fuera de transacción.
type Repositories struct {
	Contratos             repository.ContratoRepository
	Cuos                  repository.CuoRepository
	Actividades           repository.ActividadRepository
	Adiciones             repository.AdicionRepository
	Modificaciones        repository.ModificacionRepository
	SeguimientosGenerales repository.SeguimientoGeneralRepository
	SeguimientosActividad repository.SeguimientoActividadRepository
	Usuarios              repository.UsuarioRepository
}

// CuoReport frente de obra con el avance de sus actividades, para informes.
type CuoReport struct {
	Cuo         *entity.Cuo
	Actividades []progress.ActividadProgress
}

// ContratoReportData todo lo necesario para renderizar el informe de un contrato.
type ContratoReportData struct {
	Contrato    *entity.Contrato
	Progreso    progress.ContratoProgress
	Historial   []progress.EventoHistorial
	Cuos        []CuoReport
	GeneradoEn  time.Time
	GeneradoPor string
}

// ContratoPDFGenerator genera el informe de avance del contrato en PDF.
type ContratoPDFGenerator interface {
	GenerateContratoPDF(ctx context.Context, data *ContratoReportData) ([]byte, error)
}

// HistorialExporter exporta la línea de tiempo del contrato a hoja de cálculo.
type HistorialExporter interface {
	ExportHistorial(ctx context.Context, data *ContratoReportData) ([]byte, error)
}
