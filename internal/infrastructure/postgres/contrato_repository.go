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

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

const contratoColumns = `
	id, numero_contrato, identificador_simple, objeto, contratista,
	valor_inicial, valor_total, fecha_inicio, fecha_terminacion_inicial, fecha_terminacion_actual,
	estado, usuario_cedula, created_at, updated_at`

// ContratoRepo implementación de ContratoRepository sobre PostgreSQL (usable con pool o tx).
type ContratoRepo struct {
	q Querier
}

// NewContratoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContratoRepository(q Querier) *ContratoRepo {
	return &ContratoRepo{q: q}
}

func scanContrato(row pgx.Row) (*entity.Contrato, error) {
	var c entity.Contrato
	err := row.Scan(
		&c.ID, &c.NumeroContrato, &c.IdentificadorSimple, &c.Objeto, &c.Contratista,
		&c.ValorInicial, &c.ValorTotal, &c.FechaInicio, &c.FechaTerminacionInicial, &c.FechaTerminacionActual,
		&c.Estado, &c.UsuarioCedula, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta el contrato y asigna ID.
func (r *ContratoRepo) Create(ctx context.Context, c *entity.Contrato) error {
	query := `
		INSERT INTO contratos (
			numero_contrato, identificador_simple, objeto, contratista,
			valor_inicial, valor_total, fecha_inicio, fecha_terminacion_inicial, fecha_terminacion_actual,
			estado, usuario_cedula, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.NumeroContrato, c.IdentificadorSimple, c.Objeto, c.Contratista,
		c.ValorInicial, c.ValorTotal, c.FechaInicio, c.FechaTerminacionInicial, c.FechaTerminacionActual,
		c.Estado, c.UsuarioCedula, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero_contrato %s", domain.ErrDuplicate, c.NumeroContrato)
		}
		if isForeignKeyViolation(err) {
			return domain.Invalid("usuario_cedula", "no corresponde a un usuario registrado")
		}
		return fmt.Errorf("insert contrato: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID o (nil, nil).
func (r *ContratoRepo) GetByID(ctx context.Context, id int64) (*entity.Contrato, error) {
	query := `SELECT ` + contratoColumns + ` FROM contratos WHERE id = $1`
	c, err := scanContrato(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return c, nil
}

// GetForUpdate obtiene el contrato y bloquea la fila (SELECT FOR UPDATE).
func (r *ContratoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Contrato, error) {
	query := `SELECT ` + contratoColumns + ` FROM contratos WHERE id = $1 FOR UPDATE`
	c, err := scanContrato(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato for update: %w", err)
	}
	return c, nil
}

// UpdateEnvelope persiste valor_total y fecha_terminacion_actual.
func (r *ContratoRepo) UpdateEnvelope(ctx context.Context, c *entity.Contrato) error {
	query := `
		UPDATE contratos
		SET valor_total = $2, fecha_terminacion_actual = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.ValorTotal, c.FechaTerminacionActual)
	if err != nil {
		return fmt.Errorf("update envelope: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista contratos por ID; usuarioCedula vacío no filtra.
func (r *ContratoRepo) List(ctx context.Context, usuarioCedula string, limit, offset int) ([]*entity.Contrato, error) {
	query := `SELECT ` + contratoColumns + `
		FROM contratos
		WHERE ($1 = '' OR usuario_cedula = $1)
		ORDER BY id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, usuarioCedula, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Contrato, 0)
	for rows.Next() {
		c, err := scanContrato(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
