package repository

import (
	"context"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// ContratoRepository define el puerto de persistencia para Contrato (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el contrato no existe.
type ContratoRepository interface {
	Create(ctx context.Context, contrato *entity.Contrato) error
	GetByID(ctx context.Context, id int64) (*entity.Contrato, error)
	// GetForUpdate bloquea la fila del contrato hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Contrato, error)
	// UpdateEnvelope persiste solo los campos mutables: valor_total y fecha_terminacion_actual.
	UpdateEnvelope(ctx context.Context, contrato *entity.Contrato) error
	// List lista contratos; si usuarioCedula no está vacío filtra por supervisor.
	List(ctx context.Context, usuarioCedula string, limit, offset int) ([]*entity.Contrato, error)
}
