package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actividad es una unidad de trabajo medible dentro de un Cuo.
// UnidadesAvance es solo descriptivo (ej. "metros cuadrados").
type Actividad struct {
	ID                   int64
	CuoID                int64
	ContratoID           int64 // resuelto vía cuos.contrato_id
	Nombre               string
	MetaFisica           decimal.Decimal
	ProyectadoFinanciero decimal.Decimal
	UnidadesAvance       string
	CreatedAt            time.Time
}
