package progress

import (
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// AplicarAdicion suma la adición al valor total del contrato.
// El caller persiste contrato y adición en la misma transacción.
func AplicarAdicion(c *entity.Contrato, a *entity.Adicion) error {
	if c == nil {
		return domain.ErrNotFound
	}
	if a == nil || !a.ValorAdicion.IsPositive() {
		return domain.Invalid("valor_adicion", "debe ser mayor que cero")
	}
	if err := ValidarEscala("valor_adicion", a.ValorAdicion, EscalaMonetaria); err != nil {
		return err
	}
	if a.Fecha.IsZero() {
		return domain.Invalid("fecha", "es requerida")
	}
	a.ContratoID = c.ID
	c.ValorTotal = c.ValorTotal.Add(a.ValorAdicion)
	return nil
}

// AplicarModificacion calcula la duración y, si el tipo afecta el plazo, fija
// FechaTerminacionActual = FechaFinal. La última modificación registrada gana,
// aunque su fecha final sea anterior a la vigente.
func AplicarModificacion(c *entity.Contrato, m *entity.Modificacion) error {
	if c == nil {
		return domain.ErrNotFound
	}
	if m == nil || !entity.ValidTipoModificacion(m.Tipo) {
		return domain.Invalid("tipo", "debe ser PRORROGA, SUSPENSION o MODIFICACION")
	}
	if m.FechaInicio.IsZero() || m.FechaFinal.IsZero() {
		return domain.Invalid("fechas", "fecha_inicio y fecha_final son requeridas")
	}
	if !DateOnly(m.FechaFinal).After(DateOnly(m.FechaInicio)) {
		return domain.Invalid("fecha_final", "debe ser posterior a fecha_inicio")
	}
	if m.AfectaPlazo() && DateOnly(m.FechaFinal).Before(DateOnly(c.FechaInicio)) {
		return domain.Invalid("fecha_final", "no puede ser anterior al inicio del contrato")
	}
	m.ContratoID = c.ID
	m.Duracion = Duracion(m.FechaInicio, m.FechaFinal)
	if m.AfectaPlazo() {
		c.FechaTerminacionActual = DateOnly(m.FechaFinal)
	}
	return nil
}

// Duracion días calendario entre inicio y fin, contando ambos extremos.
// 2024-03-15 a 2024-04-15 son 32 días.
func Duracion(inicio, fin time.Time) int {
	dias := DateOnly(fin).Sub(DateOnly(inicio)).Hours() / 24
	return int(dias) + 1
}

// DateOnly trunca a medianoche UTC conservando la fecha calendario.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
