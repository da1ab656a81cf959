package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

// ContratoRepo contratos en memoria; con tx != nil las escrituras quedan pendientes hasta Commit.
type ContratoRepo struct {
	s  *Store
	tx *txn
}

// NewContratoRepository repositorio fuera de transacción.
func NewContratoRepository(s *Store) *ContratoRepo { return &ContratoRepo{s: s} }

// Create inserta el contrato asignando ID; numero_contrato es único.
func (r *ContratoRepo) Create(_ context.Context, c *entity.Contrato) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.contratos {
		if existing.NumeroContrato == c.NumeroContrato {
			return domain.ErrDuplicate
		}
	}
	r.s.contratoSeq++
	c.ID = r.s.contratoSeq
	r.s.contratos[c.ID] = *c
	return nil
}

// GetByID obtiene el contrato (versión pendiente si la tx ya lo modificó).
func (r *ContratoRepo) GetByID(_ context.Context, id int64) (*entity.Contrato, error) {
	if r.tx != nil {
		if c, ok := r.tx.contratos[id]; ok {
			return &c, nil
		}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contratos[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetForUpdate toma el candado del contrato hasta el fin de la transacción.
// Fuera de transacción se comporta como GetByID.
func (r *ContratoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Contrato, error) {
	if r.tx == nil {
		return r.GetByID(ctx, id)
	}
	if !r.tx.holds(id) {
		r.s.mu.RLock()
		_, exists := r.s.contratos[id]
		r.s.mu.RUnlock()
		if !exists {
			return nil, nil
		}
		if err := r.s.lockContrato(ctx, id); err != nil {
			return nil, err
		}
		r.tx.locked = append(r.tx.locked, id)
	}
	return r.GetByID(ctx, id)
}

// UpdateEnvelope persiste valor_total, fecha_terminacion_actual y updated_at.
func (r *ContratoRepo) UpdateEnvelope(ctx context.Context, c *entity.Contrato) error {
	current, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	current.ValorTotal = c.ValorTotal
	current.FechaTerminacionActual = c.FechaTerminacionActual
	current.UpdatedAt = c.UpdatedAt
	if r.tx != nil {
		r.tx.contratos[c.ID] = *current
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contratos[c.ID] = *current
	return nil
}

// List lista contratos por ID; usuarioCedula vacío no filtra.
func (r *ContratoRepo) List(_ context.Context, usuarioCedula string, limit, offset int) ([]*entity.Contrato, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Contrato, 0, len(r.s.contratos))
	for _, c := range r.s.contratos {
		if usuarioCedula != "" && c.UsuarioCedula != usuarioCedula {
			continue
		}
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return []*entity.Contrato{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
