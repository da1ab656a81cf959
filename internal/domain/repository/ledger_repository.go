package repository

import (
	"context"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Los repositorios de esta sección son solo de anexado: no existe Update ni Delete.
// Append asigna ID, CreatedAt y Secuencia; los List devuelven en orden (created_at, secuencia)
// del más antiguo al más reciente, y un slice vacío si no hay registros.

// AdicionRepository persiste adiciones presupuestales.
type AdicionRepository interface {
	Append(ctx context.Context, adicion *entity.Adicion) error
	ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Adicion, error)
}

// ModificacionRepository persiste modificaciones de plazo.
type ModificacionRepository interface {
	Append(ctx context.Context, modificacion *entity.Modificacion) error
	ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Modificacion, error)
}

// SeguimientoGeneralRepository persiste los reportes de avance del contrato.
type SeguimientoGeneralRepository interface {
	Append(ctx context.Context, seguimiento *entity.SeguimientoGeneral) error
	ListByContrato(ctx context.Context, contratoID int64) ([]*entity.SeguimientoGeneral, error)
}

// SeguimientoActividadRepository persiste los reportes de avance por actividad.
type SeguimientoActividadRepository interface {
	Append(ctx context.Context, seguimiento *entity.SeguimientoActividad) error
	ListByActividad(ctx context.Context, actividadID int64) ([]*entity.SeguimientoActividad, error)
}
