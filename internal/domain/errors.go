package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrValidation   = errors.New("datos inválidos")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("No tienes acceso a este contrato")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Invalid construye un error de validación para un campo concreto.
// Se compara con errors.Is(err, ErrValidation).
func Invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
