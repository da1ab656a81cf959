package repository

import (
	"context"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// CuoRepository define el puerto de persistencia para frentes de obra.
type CuoRepository interface {
	Create(ctx context.Context, cuo *entity.Cuo) error
	// GetByID devuelve el cuo con CantidadActividades calculada, o (nil, nil).
	GetByID(ctx context.Context, id int64) (*entity.Cuo, error)
	ListByContrato(ctx context.Context, contratoID int64) ([]*entity.Cuo, error)
}

// ActividadRepository define el puerto de persistencia para actividades.
// Las lecturas resuelven ContratoID a través del cuo para el control de acceso.
type ActividadRepository interface {
	Create(ctx context.Context, actividad *entity.Actividad) error
	GetByID(ctx context.Context, id int64) (*entity.Actividad, error)
	ListByCuo(ctx context.Context, cuoID int64) ([]*entity.Actividad, error)
}
