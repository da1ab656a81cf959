package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var (
	_ repository.AdicionRepository              = (*AdicionRepo)(nil)
	_ repository.ModificacionRepository         = (*ModificacionRepo)(nil)
	_ repository.SeguimientoGeneralRepository   = (*SeguimientoGeneralRepo)(nil)
	_ repository.SeguimientoActividadRepository = (*SeguimientoActividadRepo)(nil)
)

// AdicionRepo libro de adiciones (solo INSERT y SELECT).
type AdicionRepo struct {
	q Querier
}

// NewAdicionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdicionRepository(q Querier) *AdicionRepo {
	return &AdicionRepo{q: q}
}

// Append inserta la adición; created_at y secuencia los asigna la base de datos.
func (r *AdicionRepo) Append(ctx context.Context, a *entity.Adicion) error {
	a.ID = uuid.New().String()
	query := `
		INSERT INTO adiciones (id, contrato_id, valor_adicion, fecha, observaciones, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, secuencia`
	err := r.q.QueryRow(ctx, query, a.ID, a.ContratoID, a.ValorAdicion, a.Fecha, a.Observaciones, a.CreatedBy).
		Scan(&a.CreatedAt, &a.Secuencia)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert adicion: %w", err)
	}
	return nil
}

// ListByContrato adiciones del contrato en orden (created_at, secuencia).
func (r *AdicionRepo) ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Adicion, error) {
	query := `
		SELECT id, contrato_id, valor_adicion, fecha, observaciones, created_by, created_at, secuencia
		FROM adiciones WHERE contrato_id = $1
		ORDER BY created_at, secuencia`
	rows, err := r.q.Query(ctx, query, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list adiciones: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Adicion, 0)
	for rows.Next() {
		var a entity.Adicion
		if err := rows.Scan(&a.ID, &a.ContratoID, &a.ValorAdicion, &a.Fecha, &a.Observaciones, &a.CreatedBy, &a.CreatedAt, &a.Secuencia); err != nil {
			return nil, fmt.Errorf("scan adicion: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ModificacionRepo libro de modificaciones.
type ModificacionRepo struct {
	q Querier
}

// NewModificacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewModificacionRepository(q Querier) *ModificacionRepo {
	return &ModificacionRepo{q: q}
}

// Append inserta la modificación.
func (r *ModificacionRepo) Append(ctx context.Context, m *entity.Modificacion) error {
	m.ID = uuid.New().String()
	query := `
		INSERT INTO modificaciones (id, contrato_id, tipo, fecha_inicio, fecha_final, duracion, observaciones, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, secuencia`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.ContratoID, m.Tipo, m.FechaInicio, m.FechaFinal, m.Duracion, m.Observaciones, m.CreatedBy,
	).Scan(&m.CreatedAt, &m.Secuencia)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert modificacion: %w", err)
	}
	return nil
}

// ListByContrato modificaciones del contrato en orden (created_at, secuencia).
func (r *ModificacionRepo) ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Modificacion, error) {
	query := `
		SELECT id, contrato_id, tipo, fecha_inicio, fecha_final, duracion, observaciones, created_by, created_at, secuencia
		FROM modificaciones WHERE contrato_id = $1
		ORDER BY created_at, secuencia`
	rows, err := r.q.Query(ctx, query, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list modificaciones: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Modificacion, 0)
	for rows.Next() {
		var m entity.Modificacion
		if err := rows.Scan(
			&m.ID, &m.ContratoID, &m.Tipo, &m.FechaInicio, &m.FechaFinal, &m.Duracion,
			&m.Observaciones, &m.CreatedBy, &m.CreatedAt, &m.Secuencia,
		); err != nil {
			return nil, fmt.Errorf("scan modificacion: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SeguimientoGeneralRepo libro de reportes del contrato.
type SeguimientoGeneralRepo struct {
	q Querier
}

// NewSeguimientoGeneralRepository construye el adaptador.
func NewSeguimientoGeneralRepository(q Querier) *SeguimientoGeneralRepo {
	return &SeguimientoGeneralRepo{q: q}
}

// Append inserta el reporte; el reloj del servidor asigna created_at.
func (r *SeguimientoGeneralRepo) Append(ctx context.Context, s *entity.SeguimientoGeneral) error {
	s.ID = uuid.New().String()
	query := `
		INSERT INTO seguimiento_general (id, contrato_id, avance_financiero, avance_fisico, observaciones, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, secuencia`
	err := r.q.QueryRow(ctx, query, s.ID, s.ContratoID, s.AvanceFinanciero, s.AvanceFisico, s.Observaciones, s.CreatedBy).
		Scan(&s.CreatedAt, &s.Secuencia)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert seguimiento general: %w", err)
	}
	return nil
}

// ListByContrato reportes del contrato del más antiguo al más reciente.
func (r *SeguimientoGeneralRepo) ListByContrato(ctx context.Context, contratoID int64) ([]*entity.SeguimientoGeneral, error) {
	query := `
		SELECT id, contrato_id, avance_financiero, avance_fisico, observaciones, created_by, created_at, secuencia
		FROM seguimiento_general WHERE contrato_id = $1
		ORDER BY created_at, secuencia`
	rows, err := r.q.Query(ctx, query, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list seguimiento general: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SeguimientoGeneral, 0)
	for rows.Next() {
		var s entity.SeguimientoGeneral
		if err := rows.Scan(&s.ID, &s.ContratoID, &s.AvanceFinanciero, &s.AvanceFisico, &s.Observaciones, &s.CreatedBy, &s.CreatedAt, &s.Secuencia); err != nil {
			return nil, fmt.Errorf("scan seguimiento general: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SeguimientoActividadRepo libro de reportes por actividad.
type SeguimientoActividadRepo struct {
	q Querier
}

// NewSeguimientoActividadRepository construye el adaptador.
func NewSeguimientoActividadRepository(q Querier) *SeguimientoActividadRepo {
	return &SeguimientoActividadRepo{q: q}
}

// Append inserta el reporte incremental.
func (r *SeguimientoActividadRepo) Append(ctx context.Context, s *entity.SeguimientoActividad) error {
	s.ID = uuid.New().String()
	query := `
		INSERT INTO seguimiento_actividad (
			id, actividad_id, avance_fisico, costo_aproximado, descripcion_seguimiento, proyeccion_actividades, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, secuencia`
	err := r.q.QueryRow(ctx, query,
		s.ID, s.ActividadID, s.AvanceFisico, s.CostoAproximado, s.DescripcionSeguimiento, s.ProyeccionActividades, s.CreatedBy,
	).Scan(&s.CreatedAt, &s.Secuencia)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert seguimiento actividad: %w", err)
	}
	return nil
}

// ListByActividad reportes de la actividad en orden (created_at, secuencia).
func (r *SeguimientoActividadRepo) ListByActividad(ctx context.Context, actividadID int64) ([]*entity.SeguimientoActividad, error) {
	query := `
		SELECT id, actividad_id, avance_fisico, costo_aproximado, descripcion_seguimiento, proyeccion_actividades,
		       created_by, created_at, secuencia
		FROM seguimiento_actividad WHERE actividad_id = $1
		ORDER BY created_at, secuencia`
	rows, err := r.q.Query(ctx, query, actividadID)
	if err != nil {
		return nil, fmt.Errorf("list seguimiento actividad: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SeguimientoActividad, 0)
	for rows.Next() {
		var s entity.SeguimientoActividad
		if err := rows.Scan(
			&s.ID, &s.ActividadID, &s.AvanceFisico, &s.CostoAproximado, &s.DescripcionSeguimiento, &s.ProyeccionActividades,
			&s.CreatedBy, &s.CreatedAt, &s.Secuencia,
		); err != nil {
			return nil, fmt.Errorf("scan seguimiento actividad: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
