package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adicion es una adición presupuestal; inmutable una vez creada.
type Adicion struct {
	ID            string
	ContratoID    int64
	ValorAdicion  decimal.Decimal
	Fecha         time.Time
	Observaciones string
	CreatedAt     time.Time // asignado por el almacenamiento
	Secuencia     int64     // asignado por el almacenamiento
	CreatedBy     string    // cédula
}
