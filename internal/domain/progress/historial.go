package progress

import (
	"sort"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Tipos de evento en la línea de tiempo del contrato.
const (
	EventoAdicion      = "ADICION"
	EventoModificacion = "MODIFICACION"
	EventoSeguimiento  = "SEGUIMIENTO"
)

// EventoHistorial entrada etiquetada de la línea de tiempo; solo el puntero del Tipo
// correspondiente es distinto de nil.
type EventoHistorial struct {
	Tipo         string
	CreatedAt    time.Time
	Secuencia    int64
	Adicion      *entity.Adicion
	Modificacion *entity.Modificacion
	Seguimiento  *entity.SeguimientoGeneral
}

// Historial mezcla los tres libros del contrato en orden (created_at, secuencia).
func Historial(
	adiciones []*entity.Adicion,
	modificaciones []*entity.Modificacion,
	seguimientos []*entity.SeguimientoGeneral,
) []EventoHistorial {
	eventos := make([]EventoHistorial, 0, len(adiciones)+len(modificaciones)+len(seguimientos))
	for _, a := range adiciones {
		eventos = append(eventos, EventoHistorial{Tipo: EventoAdicion, CreatedAt: a.CreatedAt, Secuencia: a.Secuencia, Adicion: a})
	}
	for _, m := range modificaciones {
		eventos = append(eventos, EventoHistorial{Tipo: EventoModificacion, CreatedAt: m.CreatedAt, Secuencia: m.Secuencia, Modificacion: m})
	}
	for _, s := range seguimientos {
		eventos = append(eventos, EventoHistorial{Tipo: EventoSeguimiento, CreatedAt: s.CreatedAt, Secuencia: s.Secuencia, Seguimiento: s})
	}
	sort.SliceStable(eventos, func(i, j int) bool {
		return antes(eventos[i].CreatedAt, eventos[i].Secuencia, eventos[j].CreatedAt, eventos[j].Secuencia)
	})
	return eventos
}
