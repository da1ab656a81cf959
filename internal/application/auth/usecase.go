package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
	"github.com/jhoicas/seguimiento-contratos/pkg/jwt"
)

// EstadoActivo estado de un usuario habilitado para iniciar sesión.
const EstadoActivo = "activo"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de usuarios y login.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// CreateUsuario registra un usuario con password hasheado (bcrypt); solo ADMIN.
func (uc *AuthUseCase) CreateUsuario(ctx context.Context, p access.Principal, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.create(ctx, in)
}

// EnsureAdmin crea el administrador inicial si la cédula aún no existe. Idempotente.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, cedula, email, password string) (bool, error) {
	existing, err := uc.userRepo.GetByCedula(ctx, cedula)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.create(ctx, dto.CreateUsuarioRequest{
		Cedula: cedula, Nombre: "Administrador", Email: email, Password: password, Rol: entity.RolAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (uc *AuthUseCase) create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	cedula := strings.TrimSpace(in.Cedula)
	if cedula == "" {
		return nil, domain.Invalid("cedula", "es requerida")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, domain.Invalid("email", "no es válido")
	}
	if len(in.Password) < 8 {
		return nil, domain.Invalid("password", "debe tener al menos 8 caracteres")
	}
	if in.Rol != entity.RolAdmin && in.Rol != entity.RolSupervisor {
		return nil, domain.Invalid("rol", "debe ser ADMIN o SUPERVISOR")
	}
	if existing, _ := uc.userRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	u := &entity.Usuario{
		Cedula:       cedula,
		Nombre:       nombre,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Estado:       EstadoActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Estado != EstadoActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Cedula, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUsuarioResponse(user),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		Cedula:    u.Cedula,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
	}
}
