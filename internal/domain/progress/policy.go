package progress

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// Acumulado es el par de cifras que lleva cada libro: un valor monetario y un avance físico.
// En el libro del contrato Fisico es un porcentaje; en el de actividad es una cantidad.
type Acumulado struct {
	Valor  decimal.Decimal
	Fisico decimal.Decimal
}

// Politica define cómo un reporte nuevo se combina con el acumulado previo.
type Politica interface {
	Validar(nuevo Acumulado) error
	Combinar(prev, nuevo Acumulado) Acumulado
}

// Reemplazo es la política del libro del contrato: cada reporte trae cifras absolutas.
// No se exige monotonía; el supervisor puede corregir hacia abajo.
var Reemplazo Politica = reemplazo{}

// Acumulacion es la política del libro de actividad: cada reporte es un delta del periodo.
var Acumulacion Politica = acumulacion{}

type reemplazo struct{}

func (reemplazo) Validar(n Acumulado) error {
	if n.Valor.IsNegative() {
		return domain.Invalid("avance_financiero", "no puede ser negativo")
	}
	if n.Fisico.IsNegative() || n.Fisico.GreaterThan(cien) {
		return domain.Invalid("avance_fisico", "debe estar entre 0 y 100")
	}
	return validarEscalas(n, "avance_financiero", "avance_fisico")
}

func (reemplazo) Combinar(_, nuevo Acumulado) Acumulado { return nuevo }

type acumulacion struct{}

func (acumulacion) Validar(n Acumulado) error {
	if n.Fisico.IsNegative() {
		return domain.Invalid("avance_fisico", "no puede ser negativo")
	}
	if n.Valor.IsNegative() {
		return domain.Invalid("costo_aproximado", "no puede ser negativo")
	}
	return validarEscalas(n, "costo_aproximado", "avance_fisico")
}

func validarEscalas(n Acumulado, campoValor, campoFisico string) error {
	if err := ValidarEscala(campoValor, n.Valor, EscalaMonetaria); err != nil {
		return err
	}
	return ValidarEscala(campoFisico, n.Fisico, EscalaFisica)
}

func (acumulacion) Combinar(prev, nuevo Acumulado) Acumulado {
	return Acumulado{Valor: prev.Valor.Add(nuevo.Valor), Fisico: prev.Fisico.Add(nuevo.Fisico)}
}

// Fold aplica la política sobre la historia, del más antiguo al más reciente.
// Historia vacía devuelve ceros.
func Fold(p Politica, historia []Acumulado) Acumulado {
	acc := Acumulado{Valor: decimal.Zero, Fisico: decimal.Zero}
	for _, h := range historia {
		acc = p.Combinar(acc, h)
	}
	return acc
}

// DeGeneral extrae las cifras de un reporte del contrato.
func DeGeneral(s *entity.SeguimientoGeneral) Acumulado {
	return Acumulado{Valor: s.AvanceFinanciero, Fisico: s.AvanceFisico}
}

// DeActividad extrae las cifras de un reporte de actividad.
func DeActividad(s *entity.SeguimientoActividad) Acumulado {
	return Acumulado{Valor: s.CostoAproximado, Fisico: s.AvanceFisico}
}

// ValidarSeguimientoGeneral valida un reporte antes de anexarlo al libro del contrato.
func ValidarSeguimientoGeneral(s *entity.SeguimientoGeneral) error {
	if s == nil || s.ContratoID <= 0 {
		return domain.Invalid("contrato_id", "es requerido")
	}
	return Reemplazo.Validar(DeGeneral(s))
}

// ValidarSeguimientoActividad valida un reporte antes de anexarlo al libro de la actividad.
func ValidarSeguimientoActividad(s *entity.SeguimientoActividad) error {
	if s == nil || s.ActividadID <= 0 {
		return domain.Invalid("actividad_id", "es requerido")
	}
	return Acumulacion.Validar(DeActividad(s))
}

// Porcentaje calcula parte/total*100. Con total cero devuelve cero (guarda de división).
func Porcentaje(parte, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return parte.Div(total).Mul(cien)
}
