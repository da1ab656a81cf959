// Package access decide si un usuario puede leer o escribir los libros de un contrato.
package access

import (
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Principal identidad del llamador, extraída del token por la capa de transporte.
type Principal struct {
	Cedula string
	Rol    string
}

// IsAdmin indica si el principal tiene alcance global.
func (p Principal) IsAdmin() bool { return p.Rol == entity.RolAdmin }

// CanAccess true si el principal es ADMIN o es el supervisor dueño del contrato.
func CanAccess(p Principal, c *entity.Contrato) bool {
	if c == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	return p.Cedula != "" && p.Cedula == c.UsuarioCedula
}

// Authorize devuelve domain.ErrNotFound si el contrato no existe y domain.ErrForbidden
// si existe pero el principal no tiene acceso.
func Authorize(p Principal, c *entity.Contrato) error {
	if c == nil {
		return domain.ErrNotFound
	}
	if !CanAccess(p, c) {
		return domain.ErrForbidden
	}
	return nil
}

// Scope cédula con la que filtrar listados; vacío significa sin filtro (ADMIN).
func Scope(p Principal) string {
	if p.IsAdmin() {
		return ""
	}
	return p.Cedula
}
