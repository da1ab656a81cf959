package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

// Ensure TxRunner implements seguimiento.TxRunner.
var _ seguimiento.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los bloqueos tomados con GetForUpdate se liberan al terminar la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	contratoRepo repository.ContratoRepository,
	adicionRepo repository.AdicionRepository,
	modificacionRepo repository.ModificacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contratoRepo := NewContratoRepository(tx)
	adicionRepo := NewAdicionRepository(tx)
	modificacionRepo := NewModificacionRepository(tx)

	if err := fn(contratoRepo, adicionRepo, modificacionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repositories puertos fuera de transacción sobre el pool.
func Repositories(pool *pgxpool.Pool) seguimiento.Repositories {
	return seguimiento.Repositories{
		Contratos:             NewContratoRepository(pool),
		Cuos:                  NewCuoRepository(pool),
		Actividades:           NewActividadRepository(pool),
		Adiciones:             NewAdicionRepository(pool),
		Modificaciones:        NewModificacionRepository(pool),
		SeguimientosGenerales: NewSeguimientoGeneralRepository(pool),
		SeguimientosActividad: NewSeguimientoActividadRepository(pool),
		Usuarios:              NewUsuarioRepository(pool),
	}
}
