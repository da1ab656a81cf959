package dto

import "time"

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	Cedula    string    `json:"cedula"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// CreateUsuarioRequest entrada para POST /api/usuarios (solo ADMIN).
type CreateUsuarioRequest struct {
	Cedula   string `json:"cedula" validate:"required"`
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=ADMIN SUPERVISOR"`
}
