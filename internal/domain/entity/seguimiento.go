package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeguimientoGeneral es un reporte de avance a nivel contrato.
// Los valores son absolutos acumulados: el último reporte reemplaza a los anteriores.
type SeguimientoGeneral struct {
	ID               string
	ContratoID       int64
	AvanceFinanciero decimal.Decimal // valor ejecutado acumulado
	AvanceFisico     decimal.Decimal // porcentaje 0-100
	Observaciones    string
	CreatedAt        time.Time
	Secuencia        int64
	CreatedBy        string
}

// SeguimientoActividad es un reporte de avance de una actividad para un periodo.
// Los valores son incrementales: el acumulado es la suma de toda la historia.
type SeguimientoActividad struct {
	ID                     string
	ActividadID            int64
	AvanceFisico           decimal.Decimal // cantidad del periodo, en UnidadesAvance
	CostoAproximado        decimal.Decimal // costo del periodo
	DescripcionSeguimiento string
	ProyeccionActividades  string
	CreatedAt              time.Time
	Secuencia              int64
	CreatedBy              string
}
