package seguimiento

import (
	"context"
	"fmt"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

// ProgressUseCase registra reportes de avance y calcula las vistas derivadas.
// Nada derivado se persiste: cada lectura recalcula desde los libros y la envolvente vigente.
type ProgressUseCase struct {
	repos    Repositories
	umbrales progress.Umbrales
}

// NewProgressUseCase construye el caso de uso con los umbrales de clasificación.
func NewProgressUseCase(repos Repositories, umbrales progress.Umbrales) *ProgressUseCase {
	return &ProgressUseCase{repos: repos, umbrales: umbrales}
}

// CreateSeguimientoGeneral anexa un reporte absoluto del contrato y devuelve el avance recalculado.
func (uc *ProgressUseCase) CreateSeguimientoGeneral(ctx context.Context, p access.Principal, contratoID int64, in dto.CreateSeguimientoGeneralRequest) (*dto.SeguimientoGeneralResult, error) {
	c, err := loadContrato(ctx, uc.repos.Contratos, p, contratoID)
	if err != nil {
		return nil, err
	}
	financiero, err := requerido("avance_financiero", in.AvanceFinanciero)
	if err != nil {
		return nil, err
	}
	fisico, err := requerido("avance_fisico", in.AvanceFisico)
	if err != nil {
		return nil, err
	}
	s := &entity.SeguimientoGeneral{
		ContratoID:       c.ID,
		AvanceFinanciero: financiero,
		AvanceFisico:     fisico,
		Observaciones:    in.Observaciones,
		CreatedBy:        p.Cedula,
	}
	if err := progress.ValidarSeguimientoGeneral(s); err != nil {
		return nil, err
	}
	if err := uc.repos.SeguimientosGenerales.Append(ctx, s); err != nil {
		return nil, err
	}
	estado, err := uc.estadoContrato(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.SeguimientoGeneralResult{
		Seguimiento: *toSeguimientoGeneralResponse(s),
		Progreso:    toContratoProgressResponse(estado),
	}, nil
}

// GetContratoProgress avance del contrato: último reporte absoluto contra la envolvente vigente.
func (uc *ProgressUseCase) GetContratoProgress(ctx context.Context, p access.Principal, contratoID int64) (*dto.ContratoProgressResponse, error) {
	if _, err := loadContrato(ctx, uc.repos.Contratos, p, contratoID); err != nil {
		return nil, err
	}
	estado, err := uc.estadoContrato(ctx, contratoID)
	if err != nil {
		return nil, err
	}
	out := toContratoProgressResponse(estado)
	return &out, nil
}

// CreateSeguimientoActividad anexa un reporte incremental de la actividad.
func (uc *ProgressUseCase) CreateSeguimientoActividad(ctx context.Context, p access.Principal, actividadID int64, in dto.CreateSeguimientoActividadRequest) (*dto.SeguimientoActividadResult, error) {
	a, _, err := loadActividad(ctx, uc.repos, p, actividadID)
	if err != nil {
		return nil, err
	}
	fisico, err := requerido("avance_fisico", in.AvanceFisico)
	if err != nil {
		return nil, err
	}
	costo, err := requerido("costo_aproximado", in.CostoAproximado)
	if err != nil {
		return nil, err
	}
	s := &entity.SeguimientoActividad{
		ActividadID:            a.ID,
		AvanceFisico:           fisico,
		CostoAproximado:        costo,
		DescripcionSeguimiento: in.DescripcionSeguimiento,
		ProyeccionActividades:  in.ProyeccionActividades,
		CreatedBy:              p.Cedula,
	}
	if err := progress.ValidarSeguimientoActividad(s); err != nil {
		return nil, err
	}
	if err := uc.repos.SeguimientosActividad.Append(ctx, s); err != nil {
		return nil, err
	}
	estado, err := uc.estadoActividad(ctx, a)
	if err != nil {
		return nil, err
	}
	return &dto.SeguimientoActividadResult{
		Seguimiento: *toSeguimientoActividadResponse(s),
		Progreso:    toActividadProgressResponse(estado),
	}, nil
}

// GetActividadProgress avance acumulado de la actividad (suma de todos sus reportes).
func (uc *ProgressUseCase) GetActividadProgress(ctx context.Context, p access.Principal, actividadID int64) (*dto.ActividadProgressResponse, error) {
	a, _, err := loadActividad(ctx, uc.repos, p, actividadID)
	if err != nil {
		return nil, err
	}
	estado, err := uc.estadoActividad(ctx, a)
	if err != nil {
		return nil, err
	}
	out := toActividadProgressResponse(estado)
	return &out, nil
}

// GetCuoProgress el cuo con el avance de cada una de sus actividades.
func (uc *ProgressUseCase) GetCuoProgress(ctx context.Context, p access.Principal, cuoID int64) (*dto.CuoProgressResponse, error) {
	cuo, _, err := loadCuo(ctx, uc.repos, p, cuoID)
	if err != nil {
		return nil, err
	}
	report, err := uc.cuoReport(ctx, cuo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActividadProgressResponse, 0, len(report.Actividades))
	for _, a := range report.Actividades {
		items = append(items, toActividadProgressResponse(a))
	}
	return &dto.CuoProgressResponse{Cuo: *toCuoResponse(cuo), Actividades: items}, nil
}

// GetContratoHistory línea de tiempo de adiciones, modificaciones y reportes en orden total.
func (uc *ProgressUseCase) GetContratoHistory(ctx context.Context, p access.Principal, contratoID int64) (*dto.HistorialResponse, error) {
	if _, err := loadContrato(ctx, uc.repos.Contratos, p, contratoID); err != nil {
		return nil, err
	}
	eventos, err := uc.historial(ctx, contratoID)
	if err != nil {
		return nil, err
	}
	return toHistorialResponse(contratoID, eventos), nil
}

// estadoContrato relee el contrato para reflejar la envolvente vigente.
func (uc *ProgressUseCase) estadoContrato(ctx context.Context, contratoID int64) (progress.ContratoProgress, error) {
	c, err := uc.repos.Contratos.GetByID(ctx, contratoID)
	if err != nil {
		return progress.ContratoProgress{}, fmt.Errorf("obtener contrato: %w", err)
	}
	if c == nil {
		return progress.ContratoProgress{}, fmt.Errorf("contrato %d desapareció durante la lectura", contratoID)
	}
	historial, err := uc.repos.SeguimientosGenerales.ListByContrato(ctx, contratoID)
	if err != nil {
		return progress.ContratoProgress{}, fmt.Errorf("listar seguimientos: %w", err)
	}
	return progress.EstadoContrato(*c, historial, uc.umbrales), nil
}

func (uc *ProgressUseCase) estadoActividad(ctx context.Context, a *entity.Actividad) (progress.ActividadProgress, error) {
	historial, err := uc.repos.SeguimientosActividad.ListByActividad(ctx, a.ID)
	if err != nil {
		return progress.ActividadProgress{}, fmt.Errorf("listar seguimientos de actividad: %w", err)
	}
	return progress.EstadoActividad(*a, historial), nil
}

func (uc *ProgressUseCase) cuoReport(ctx context.Context, cuo *entity.Cuo) (CuoReport, error) {
	actividades, err := uc.repos.Actividades.ListByCuo(ctx, cuo.ID)
	if err != nil {
		return CuoReport{}, fmt.Errorf("listar actividades: %w", err)
	}
	out := CuoReport{Cuo: cuo, Actividades: make([]progress.ActividadProgress, 0, len(actividades))}
	for _, a := range actividades {
		estado, err := uc.estadoActividad(ctx, a)
		if err != nil {
			return CuoReport{}, err
		}
		out.Actividades = append(out.Actividades, estado)
	}
	return out, nil
}

func (uc *ProgressUseCase) historial(ctx context.Context, contratoID int64) ([]progress.EventoHistorial, error) {
	adiciones, err := uc.repos.Adiciones.ListByContrato(ctx, contratoID)
	if err != nil {
		return nil, fmt.Errorf("listar adiciones: %w", err)
	}
	modificaciones, err := uc.repos.Modificaciones.ListByContrato(ctx, contratoID)
	if err != nil {
		return nil, fmt.Errorf("listar modificaciones: %w", err)
	}
	seguimientos, err := uc.repos.SeguimientosGenerales.ListByContrato(ctx, contratoID)
	if err != nil {
		return nil, fmt.Errorf("listar seguimientos: %w", err)
	}
	return progress.Historial(adiciones, modificaciones, seguimientos), nil
}
