package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo usuarios en memoria indexados por cédula.
type UsuarioRepo struct{ s *Store }

// NewUsuarioRepository construye el repositorio.
func NewUsuarioRepository(s *Store) *UsuarioRepo { return &UsuarioRepo{s: s} }

// Create inserta el usuario; cédula y email son únicos.
func (r *UsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.usuarios[u.Cedula]; ok {
		return domain.ErrDuplicate
	}
	for _, existing := range r.s.usuarios {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	r.s.usuarios[u.Cedula] = *u
	return nil
}

// GetByCedula obtiene el usuario o (nil, nil).
func (r *UsuarioRepo) GetByCedula(_ context.Context, cedula string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.usuarios[cedula]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail obtiene el usuario por email (sin distinguir mayúsculas) o (nil, nil).
func (r *UsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.usuarios {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}
