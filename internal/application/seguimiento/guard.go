package seguimiento

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
)

// loadContrato carga el contrato y aplica el guard: ErrNotFound antes que ErrForbidden.
func loadContrato(ctx context.Context, repo repository.ContratoRepository, p access.Principal, id int64) (*entity.Contrato, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener contrato: %w", err)
	}
	if err := access.Authorize(p, c); err != nil {
		return nil, err
	}
	return c, nil
}

// loadActividad resuelve la actividad y autoriza contra el contrato al que pertenece.
func loadActividad(ctx context.Context, repos Repositories, p access.Principal, id int64) (*entity.Actividad, *entity.Contrato, error) {
	if id <= 0 {
		return nil, nil, domain.ErrNotFound
	}
	a, err := repos.Actividades.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener actividad: %w", err)
	}
	if a == nil {
		return nil, nil, domain.ErrNotFound
	}
	c, err := loadContrato(ctx, repos.Contratos, p, a.ContratoID)
	if err != nil {
		return nil, nil, err
	}
	return a, c, nil
}

// loadCuo resuelve el cuo y autoriza contra su contrato.
func loadCuo(ctx context.Context, repos Repositories, p access.Principal, id int64) (*entity.Cuo, *entity.Contrato, error) {
	if id <= 0 {
		return nil, nil, domain.ErrNotFound
	}
	cuo, err := repos.Cuos.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener cuo: %w", err)
	}
	if cuo == nil {
		return nil, nil, domain.ErrNotFound
	}
	c, err := loadContrato(ctx, repos.Contratos, p, cuo.ContratoID)
	if err != nil {
		return nil, nil, err
	}
	return cuo, c, nil
}

func parseFecha(field, s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.Invalid(field, "debe tener formato YYYY-MM-DD")
	}
	return t, nil
}

// requerido exige que la cifra venga en el cuerpo; null o ausente es error de validación.
func requerido(field string, v decimal.NullDecimal) (decimal.Decimal, error) {
	if !v.Valid {
		return decimal.Zero, domain.Invalid(field, "es requerido")
	}
	return v.Decimal, nil
}
