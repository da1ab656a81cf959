package entity

import "time"

// Tipos de modificación contractual.
const (
	TipoProrroga     = "PRORROGA"
	TipoSuspension   = "SUSPENSION"
	TipoModificacion = "MODIFICACION"
)

// Modificacion es un cambio de plazo (prórroga, suspensión u otro); inmutable una vez creada.
type Modificacion struct {
	ID            string
	ContratoID    int64
	Tipo          string
	FechaInicio   time.Time
	FechaFinal    time.Time
	Duracion      int // días calendario, inclusivo
	Observaciones string
	CreatedAt     time.Time
	Secuencia     int64
	CreatedBy     string
}

// ValidTipoModificacion indica si el tipo es uno de los conocidos.
func ValidTipoModificacion(tipo string) bool {
	switch tipo {
	case TipoProrroga, TipoSuspension, TipoModificacion:
		return true
	}
	return false
}

// AfectaPlazo indica si el tipo mueve la fecha de terminación actual del contrato.
func (m Modificacion) AfectaPlazo() bool {
	return m.Tipo == TipoProrroga || m.Tipo == TipoSuspension
}
