package progress

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Clasificación del balance entre avance físico y financiero.
const (
	EstadoAvanceNormal         = "NORMAL"
	EstadoAvanceRetrasoFisico  = "RETRASO_FISICO"  // el costo va por delante de la obra
	EstadoAvanceAdelantoFisico = "ADELANTO_FISICO" // la obra va por delante del costo
	EstadoAvanceSinReporte     = "SIN_REPORTE"
)

// Umbrales en puntos porcentuales para clasificar DiferenciaAvance.
type Umbrales struct {
	Retraso  decimal.Decimal
	Adelanto decimal.Decimal
}

// DefaultUmbrales devuelve ±5 puntos.
func DefaultUmbrales() Umbrales {
	return Umbrales{Retraso: decimal.NewFromInt(5), Adelanto: decimal.NewFromInt(5)}
}

// Clasificar ubica la diferencia (físico - financiero) en su banda.
// Los bordes exactos cuentan como NORMAL.
func Clasificar(diferencia decimal.Decimal, u Umbrales) string {
	switch {
	case diferencia.LessThan(u.Retraso.Neg()):
		return EstadoAvanceRetrasoFisico
	case diferencia.GreaterThan(u.Adelanto):
		return EstadoAvanceAdelantoFisico
	default:
		return EstadoAvanceNormal
	}
}

// ContratoProgress es la vista de avance del contrato calculada en cada lectura.
type ContratoProgress struct {
	ContratoID             int64
	Reportado              bool
	ValorInicial           decimal.Decimal
	ValorTotal             decimal.Decimal
	ValorEjecutado         decimal.Decimal
	ValorPorEjecutar       decimal.Decimal
	AvanceFisico           decimal.Decimal
	PorcentajeFinanciero   decimal.Decimal // 2 decimales
	DiferenciaAvance       decimal.Decimal // 2 decimales
	EstadoAvance           string
	FechaTerminacionActual time.Time
	Observaciones          string
	UltimoReporte          *time.Time
	CantidadReportes       int
}

// EstadoContrato calcula el avance del contrato a partir de su historia y de la
// envolvente actual. Un cambio en ValorTotal se refleja en la siguiente lectura
// aunque no haya reportes nuevos.
func EstadoContrato(c entity.Contrato, historial []*entity.SeguimientoGeneral, u Umbrales) ContratoProgress {
	out := ContratoProgress{
		ContratoID:             c.ID,
		ValorInicial:           c.ValorInicial,
		ValorTotal:             c.ValorTotal,
		ValorEjecutado:         decimal.Zero,
		ValorPorEjecutar:       c.ValorTotal,
		AvanceFisico:           decimal.Zero,
		PorcentajeFinanciero:   decimal.Zero,
		DiferenciaAvance:       decimal.Zero,
		EstadoAvance:           EstadoAvanceSinReporte,
		FechaTerminacionActual: c.FechaTerminacionActual,
	}

	ordenados := ordenarGenerales(historial)
	if len(ordenados) == 0 {
		return out
	}

	cifras := make([]Acumulado, 0, len(ordenados))
	for _, s := range ordenados {
		cifras = append(cifras, DeGeneral(s))
	}
	actual := Fold(Reemplazo, cifras)
	ultimo := ordenados[len(ordenados)-1]

	porcentaje := Porcentaje(actual.Valor, c.ValorTotal)
	diferencia := actual.Fisico.Sub(porcentaje)
	fecha := ultimo.CreatedAt

	out.Reportado = true
	out.ValorEjecutado = actual.Valor
	out.ValorPorEjecutar = c.ValorTotal.Sub(actual.Valor)
	out.AvanceFisico = actual.Fisico
	out.PorcentajeFinanciero = porcentaje.Round(2)
	out.DiferenciaAvance = diferencia.Round(2)
	out.EstadoAvance = Clasificar(diferencia, u)
	out.Observaciones = ultimo.Observaciones
	out.UltimoReporte = &fecha
	out.CantidadReportes = len(ordenados)
	return out
}
