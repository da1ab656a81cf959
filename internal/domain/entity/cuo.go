package entity

import "time"

// Cuo es un frente de obra georreferenciado que agrupa actividades de un contrato.
type Cuo struct {
	ID                  int64
	ContratoID          int64
	Numero              string
	Latitud             float64
	Longitud            float64
	Comuna              string
	Barrio              string
	Descripcion         string
	CantidadActividades int // derivado en lectura
	CreatedAt           time.Time
}
