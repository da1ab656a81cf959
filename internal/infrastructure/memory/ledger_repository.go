package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var (
	_ repository.AdicionRepository              = (*AdicionRepo)(nil)
	_ repository.ModificacionRepository         = (*ModificacionRepo)(nil)
	_ repository.SeguimientoGeneralRepository   = (*SeguimientoGeneralRepo)(nil)
	_ repository.SeguimientoActividadRepository = (*SeguimientoActividadRepo)(nil)
)

// AdicionRepo libro de adiciones.
type AdicionRepo struct {
	s  *Store
	tx *txn
}

// NewAdicionRepository repositorio fuera de transacción.
func NewAdicionRepository(s *Store) *AdicionRepo { return &AdicionRepo{s: s} }

// Append asigna ID, CreatedAt y Secuencia y anexa la adición.
func (r *AdicionRepo) Append(_ context.Context, a *entity.Adicion) error {
	a.ID, a.CreatedAt, a.Secuencia = r.s.stamp()
	if r.tx != nil {
		r.tx.adiciones = append(r.tx.adiciones, *a)
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.adiciones = append(r.s.adiciones, *a)
	return nil
}

// ListByContrato adiciones del contrato de la más antigua a la más reciente.
func (r *AdicionRepo) ListByContrato(_ context.Context, contratoID int64) ([]*entity.Adicion, error) {
	r.s.mu.RLock()
	out := make([]*entity.Adicion, 0)
	for _, a := range r.s.adiciones {
		if a.ContratoID == contratoID {
			out = append(out, &a)
		}
	}
	r.s.mu.RUnlock()
	if r.tx != nil {
		for _, a := range r.tx.adiciones {
			if a.ContratoID == contratoID {
				out = append(out, &a)
			}
		}
	}
	sortAdiciones(out)
	return out, nil
}

// ModificacionRepo libro de modificaciones.
type ModificacionRepo struct {
	s  *Store
	tx *txn
}

// NewModificacionRepository repositorio fuera de transacción.
func NewModificacionRepository(s *Store) *ModificacionRepo { return &ModificacionRepo{s: s} }

// Append asigna ID, CreatedAt y Secuencia y anexa la modificación.
func (r *ModificacionRepo) Append(_ context.Context, m *entity.Modificacion) error {
	m.ID, m.CreatedAt, m.Secuencia = r.s.stamp()
	if r.tx != nil {
		r.tx.modificaciones = append(r.tx.modificaciones, *m)
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.modificaciones = append(r.s.modificaciones, *m)
	return nil
}

// ListByContrato modificaciones del contrato en orden.
func (r *ModificacionRepo) ListByContrato(_ context.Context, contratoID int64) ([]*entity.Modificacion, error) {
	r.s.mu.RLock()
	out := make([]*entity.Modificacion, 0)
	for _, m := range r.s.modificaciones {
		if m.ContratoID == contratoID {
			out = append(out, &m)
		}
	}
	r.s.mu.RUnlock()
	if r.tx != nil {
		for _, m := range r.tx.modificaciones {
			if m.ContratoID == contratoID {
				out = append(out, &m)
			}
		}
	}
	sortModificaciones(out)
	return out, nil
}

// SeguimientoGeneralRepo libro de reportes del contrato.
type SeguimientoGeneralRepo struct {
	s *Store
}

// NewSeguimientoGeneralRepository construye el repositorio.
func NewSeguimientoGeneralRepository(s *Store) *SeguimientoGeneralRepo {
	return &SeguimientoGeneralRepo{s: s}
}

// Append asigna ID, CreatedAt y Secuencia; los valores del cliente para esos campos se ignoran.
func (r *SeguimientoGeneralRepo) Append(_ context.Context, sg *entity.SeguimientoGeneral) error {
	sg.ID, sg.CreatedAt, sg.Secuencia = r.s.stamp()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.generales = append(r.s.generales, *sg)
	return nil
}

// ListByContrato reportes del contrato del más antiguo al más reciente.
func (r *SeguimientoGeneralRepo) ListByContrato(_ context.Context, contratoID int64) ([]*entity.SeguimientoGeneral, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SeguimientoGeneral, 0)
	for _, sg := range r.s.generales {
		if sg.ContratoID == contratoID {
			out = append(out, &sg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return antes(out[i].CreatedAt, out[i].Secuencia, out[j].CreatedAt, out[j].Secuencia)
	})
	return out, nil
}

// SeguimientoActividadRepo libro de reportes por actividad.
type SeguimientoActividadRepo struct {
	s *Store
}

// NewSeguimientoActividadRepository construye el repositorio.
func NewSeguimientoActividadRepository(s *Store) *SeguimientoActividadRepo {
	return &SeguimientoActividadRepo{s: s}
}

// Append asigna ID, CreatedAt y Secuencia.
func (r *SeguimientoActividadRepo) Append(_ context.Context, sa *entity.SeguimientoActividad) error {
	sa.ID, sa.CreatedAt, sa.Secuencia = r.s.stamp()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.porActividad = append(r.s.porActividad, *sa)
	return nil
}

// ListByActividad reportes de la actividad en orden.
func (r *SeguimientoActividadRepo) ListByActividad(_ context.Context, actividadID int64) ([]*entity.SeguimientoActividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SeguimientoActividad, 0)
	for _, sa := range r.s.porActividad {
		if sa.ActividadID == actividadID {
			out = append(out, &sa)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return antes(out[i].CreatedAt, out[i].Secuencia, out[j].CreatedAt, out[j].Secuencia)
	})
	return out, nil
}
