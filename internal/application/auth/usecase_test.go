package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/application/auth"
	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/seguimiento-contratos/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 10, Issuer: "seguimiento-test"}

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	uc := auth.NewAuthUseCase(memory.NewUsuarioRepository(memory.NewStore()), jwtCfg)
	created, err := uc.EnsureAdmin(context.Background(), "1000", "admin@alcaldia.gov.co", "clave-segura")
	require.NoError(t, err)
	require.True(t, created)
	return uc
}

func TestLogin_TokenConCedulaYRol(t *testing.T) {
	uc := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@alcaldia.gov.co", Password: "clave-segura"})
	require.NoError(t, err)

	cedula, role, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1000", cedula)
	assert.Equal(t, entity.RolAdmin, role)
	assert.Equal(t, entity.RolAdmin, out.User.Rol)
}

func TestLogin_Errores(t *testing.T) {
	uc := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@alcaldia.gov.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@alcaldia.gov.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc := newAuth(t)
	created, err := uc.EnsureAdmin(context.Background(), "1000", "admin@alcaldia.gov.co", "clave-segura")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCreateUsuario_SoloAdmin(t *testing.T) {
	uc := newAuth(t)
	in := dto.CreateUsuarioRequest{Cedula: "2000", Nombre: "Supervisora", Email: "sup@alcaldia.gov.co", Password: "12345678", Rol: entity.RolSupervisor}

	_, err := uc.CreateUsuario(context.Background(), access.Principal{Cedula: "2", Rol: entity.RolSupervisor}, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.CreateUsuario(context.Background(), access.Principal{Cedula: "1000", Rol: entity.RolAdmin}, in)
	require.NoError(t, err)
	assert.Equal(t, "2000", out.Cedula)

	_, err = uc.CreateUsuario(context.Background(), access.Principal{Cedula: "1000", Rol: entity.RolAdmin}, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	in.Cedula, in.Email, in.Rol = "3000", "x@alcaldia.gov.co", "bodeguero"
	_, err = uc.CreateUsuario(context.Background(), access.Principal{Cedula: "1000", Rol: entity.RolAdmin}, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
