package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del contrato.
const (
	EstadoContratoActivo     = "activo"
	EstadoContratoSuspendido = "suspendido"
	EstadoContratoTerminado  = "terminado"
	EstadoContratoLiquidado  = "liquidado"
)

// Contrato representa un contrato municipal de obra o servicios.
// ValorInicial, FechaInicio y FechaTerminacionInicial son la línea base y no cambian;
// ValorTotal y FechaTerminacionActual solo cambian por adiciones y modificaciones.
type Contrato struct {
	ID                      int64
	NumeroContrato          string // único
	IdentificadorSimple     string
	Objeto                  string
	Contratista             string
	ValorInicial            decimal.Decimal
	ValorTotal              decimal.Decimal
	FechaInicio             time.Time
	FechaTerminacionInicial time.Time
	FechaTerminacionActual  time.Time
	Estado                  string
	UsuarioCedula           string // supervisor responsable
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ValidEstadoContrato indica si el estado pertenece al ciclo de vida conocido.
func ValidEstadoContrato(estado string) bool {
	switch estado {
	case EstadoContratoActivo, EstadoContratoSuspendido, EstadoContratoTerminado, EstadoContratoLiquidado:
		return true
	}
	return false
}
