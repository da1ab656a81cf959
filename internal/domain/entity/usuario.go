package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin      = "ADMIN"
	RolSupervisor = "SUPERVISOR"
)

// Usuario representa un usuario del sistema identificado por su cédula.
// Un supervisor solo ve los contratos donde figura como usuario_cedula.
type Usuario struct {
	Cedula       string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt
	Rol          string // ADMIN, SUPERVISOR
	Estado       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
