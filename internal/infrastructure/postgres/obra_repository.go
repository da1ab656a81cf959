package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var (
	_ repository.CuoRepository       = (*CuoRepo)(nil)
	_ repository.ActividadRepository = (*ActividadRepo)(nil)
)

const cuoSelect = `
	SELECT c.id, c.contrato_id, c.numero, c.latitud, c.longitud, c.comuna, c.barrio, c.descripcion, c.created_at,
	       (SELECT COUNT(*) FROM actividades a WHERE a.cuo_id = c.id)::int AS cantidad_actividades
	FROM cuos c`

// CuoRepo implementación de CuoRepository sobre PostgreSQL.
type CuoRepo struct {
	q Querier
}

// NewCuoRepository construye el adaptador.
func NewCuoRepository(q Querier) *CuoRepo {
	return &CuoRepo{q: q}
}

func scanCuo(row pgx.Row) (*entity.Cuo, error) {
	var c entity.Cuo
	if err := row.Scan(
		&c.ID, &c.ContratoID, &c.Numero, &c.Latitud, &c.Longitud, &c.Comuna, &c.Barrio, &c.Descripcion, &c.CreatedAt,
		&c.CantidadActividades,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta el cuo.
func (r *CuoRepo) Create(ctx context.Context, c *entity.Cuo) error {
	query := `
		INSERT INTO cuos (contrato_id, numero, latitud, longitud, comuna, barrio, descripcion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.ContratoID, c.Numero, c.Latitud, c.Longitud, c.Comuna, c.Barrio, c.Descripcion, c.CreatedAt).
		Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert cuo: %w", err)
	}
	return nil
}

// GetByID obtiene el cuo con CantidadActividades o (nil, nil).
func (r *CuoRepo) GetByID(ctx context.Context, id int64) (*entity.Cuo, error) {
	c, err := scanCuo(r.q.QueryRow(ctx, cuoSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuo: %w", err)
	}
	return c, nil
}

// ListByContrato cuos del contrato ordenados por ID.
func (r *CuoRepo) ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Cuo, error) {
	rows, err := r.q.Query(ctx, cuoSelect+` WHERE c.contrato_id = $1 ORDER BY c.id`, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list cuos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Cuo, 0)
	for rows.Next() {
		c, err := scanCuo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cuo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

const actividadSelect = `
	SELECT a.id, a.cuo_id, c.contrato_id, a.nombre, a.meta_fisica, a.proyectado_financiero, a.unidades_avance, a.created_at
	FROM actividades a
	JOIN cuos c ON c.id = a.cuo_id`

// ActividadRepo implementación de ActividadRepository sobre PostgreSQL.
type ActividadRepo struct {
	q Querier
}

// NewActividadRepository construye el adaptador.
func NewActividadRepository(q Querier) *ActividadRepo {
	return &ActividadRepo{q: q}
}

func scanActividad(row pgx.Row) (*entity.Actividad, error) {
	var a entity.Actividad
	if err := row.Scan(
		&a.ID, &a.CuoID, &a.ContratoID, &a.Nombre, &a.MetaFisica, &a.ProyectadoFinanciero, &a.UnidadesAvance, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la actividad.
func (r *ActividadRepo) Create(ctx context.Context, a *entity.Actividad) error {
	query := `
		INSERT INTO actividades (cuo_id, nombre, meta_fisica, proyectado_financiero, unidades_avance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.CuoID, a.Nombre, a.MetaFisica, a.ProyectadoFinanciero, a.UnidadesAvance, a.CreatedAt).
		Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert actividad: %w", err)
	}
	return nil
}

// GetByID obtiene la actividad con ContratoID resuelto vía cuos, o (nil, nil).
func (r *ActividadRepo) GetByID(ctx context.Context, id int64) (*entity.Actividad, error) {
	a, err := scanActividad(r.q.QueryRow(ctx, actividadSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actividad: %w", err)
	}
	return a, nil
}

// ListByCuo actividades del cuo ordenadas por ID.
func (r *ActividadRepo) ListByCuo(ctx context.Context, cuoID int64) ([]*entity.Actividad, error) {
	rows, err := r.q.Query(ctx, actividadSelect+` WHERE a.cuo_id = $1 ORDER BY a.id`, cuoID)
	if err != nil {
		return nil, fmt.Errorf("list actividades: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Actividad, 0)
	for rows.Next() {
		a, err := scanActividad(rows)
		if err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
