package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

var contrato = &entity.Contrato{ID: 1, UsuarioCedula: "1061000111"}

// Caso 1: ADMIN accede a cualquier contrato.
func TestCanAccess_AdminSiempre(t *testing.T) {
	p := access.Principal{Cedula: "999", Rol: entity.RolAdmin}
	assert.True(t, access.CanAccess(p, contrato))
	assert.NoError(t, access.Authorize(p, contrato))
	assert.Equal(t, "", access.Scope(p))
}

// Caso 2: el supervisor asignado accede a su contrato.
func TestCanAccess_SupervisorDueno(t *testing.T) {
	p := access.Principal{Cedula: "1061000111", Rol: entity.RolSupervisor}
	assert.True(t, access.CanAccess(p, contrato))
	assert.Equal(t, "1061000111", access.Scope(p))
}

// Caso 3: otro supervisor recibe Forbidden, no NotFound.
func TestAuthorize_SupervisorAjeno(t *testing.T) {
	p := access.Principal{Cedula: "222", Rol: entity.RolSupervisor}
	err := access.Authorize(p, contrato)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// Caso 4: contrato inexistente es NotFound incluso para ADMIN.
func TestAuthorize_ContratoInexistente(t *testing.T) {
	assert.ErrorIs(t, access.Authorize(access.Principal{Rol: entity.RolAdmin}, nil), domain.ErrNotFound)
}

// Caso 5: cédula vacía nunca coincide con un contrato sin dueño.
func TestCanAccess_CedulaVacia(t *testing.T) {
	sinDueno := &entity.Contrato{ID: 2}
	assert.False(t, access.CanAccess(access.Principal{Rol: entity.RolSupervisor}, sinDueno))
}
