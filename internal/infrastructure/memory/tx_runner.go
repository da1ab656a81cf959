package memory

import (
	"context"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var _ seguimiento.TxRunner = (*Store)(nil)

// txn escrituras pendientes de una transacción.
type txn struct {
	store          *Store
	locked         []int64
	contratos      map[int64]entity.Contrato
	adiciones      []entity.Adicion
	modificaciones []entity.Modificacion
}

// Run ejecuta fn con repositorios atados a una transacción; Commit si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(
	contratoRepo repository.ContratoRepository,
	adicionRepo repository.AdicionRepository,
	modificacionRepo repository.ModificacionRepository,
) error) error {
	tx := &txn{store: s, contratos: map[int64]entity.Contrato{}}
	defer tx.release()

	if err := fn(
		&ContratoRepo{s: s, tx: tx},
		&AdicionRepo{s: s, tx: tx},
		&ModificacionRepo{s: s, tx: tx},
	); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (tx *txn) holds(id int64) bool {
	for _, l := range tx.locked {
		if l == id {
			return true
		}
	}
	return false
}

func (tx *txn) commit() {
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range tx.contratos {
		s.contratos[id] = c
	}
	s.adiciones = append(s.adiciones, tx.adiciones...)
	s.modificaciones = append(s.modificaciones, tx.modificaciones...)
}

func (tx *txn) release() {
	for _, id := range tx.locked {
		tx.store.unlockContrato(id)
	}
	tx.locked = nil
}

// Repositories puertos fuera de transacción sobre este store.
func (s *Store) Repositories() seguimiento.Repositories {
	return seguimiento.Repositories{
		Contratos:             NewContratoRepository(s),
		Cuos:                  NewCuoRepository(s),
		Actividades:           NewActividadRepository(s),
		Adiciones:             NewAdicionRepository(s),
		Modificaciones:        NewModificacionRepository(s),
		SeguimientosGenerales: NewSeguimientoGeneralRepository(s),
		SeguimientosActividad: NewSeguimientoActividadRepository(s),
		Usuarios:              NewUsuarioRepository(s),
	}
}
