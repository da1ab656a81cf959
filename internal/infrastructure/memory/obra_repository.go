package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var (
	_ repository.CuoRepository       = (*CuoRepo)(nil)
	_ repository.ActividadRepository = (*ActividadRepo)(nil)
)

// CuoRepo frentes de obra en memoria.
type CuoRepo struct{ s *Store }

// NewCuoRepository construye el repositorio.
func NewCuoRepository(s *Store) *CuoRepo { return &CuoRepo{s: s} }

// Create inserta el cuo; el contrato debe existir.
func (r *CuoRepo) Create(_ context.Context, c *entity.Cuo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contratos[c.ContratoID]; !ok {
		return domain.ErrNotFound
	}
	r.s.cuoSeq++
	c.ID = r.s.cuoSeq
	c.CantidadActividades = 0
	r.s.cuos[c.ID] = *c
	return nil
}

// GetByID obtiene el cuo con CantidadActividades.
func (r *CuoRepo) GetByID(_ context.Context, id int64) (*entity.Cuo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.cuos[id]
	if !ok {
		return nil, nil
	}
	c.CantidadActividades = r.s.countActividades(id)
	return &c, nil
}

// ListByContrato cuos del contrato ordenados por ID.
func (r *CuoRepo) ListByContrato(_ context.Context, contratoID int64) ([]*entity.Cuo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Cuo, 0)
	for _, c := range r.s.cuos {
		if c.ContratoID != contratoID {
			continue
		}
		c.CantidadActividades = r.s.countActividades(c.ID)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// countActividades requiere s.mu tomado.
func (s *Store) countActividades(cuoID int64) int {
	n := 0
	for _, a := range s.actividades {
		if a.CuoID == cuoID {
			n++
		}
	}
	return n
}

// ActividadRepo actividades en memoria.
type ActividadRepo struct{ s *Store }

// NewActividadRepository construye el repositorio.
func NewActividadRepository(s *Store) *ActividadRepo { return &ActividadRepo{s: s} }

// Create inserta la actividad; el cuo debe existir.
func (r *ActividadRepo) Create(_ context.Context, a *entity.Actividad) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cuo, ok := r.s.cuos[a.CuoID]
	if !ok {
		return domain.ErrNotFound
	}
	r.s.actividadSeq++
	a.ID = r.s.actividadSeq
	a.ContratoID = cuo.ContratoID
	r.s.actividades[a.ID] = *a
	return nil
}

// GetByID obtiene la actividad con ContratoID resuelto desde su cuo.
func (r *ActividadRepo) GetByID(_ context.Context, id int64) (*entity.Actividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.actividades[id]
	if !ok {
		return nil, nil
	}
	if cuo, ok := r.s.cuos[a.CuoID]; ok {
		a.ContratoID = cuo.ContratoID
	}
	return &a, nil
}

// ListByCuo actividades del cuo ordenadas por ID.
func (r *ActividadRepo) ListByCuo(_ context.Context, cuoID int64) ([]*entity.Actividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Actividad, 0)
	for _, a := range r.s.actividades {
		if a.CuoID == cuoID {
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
