package progress

import (
	"sort"
	"time"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// antes define el orden total de los libros: fecha de creación y, en empate, secuencia.
func antes(aT time.Time, aSeq int64, bT time.Time, bSeq int64) bool {
	if !aT.Equal(bT) {
		return aT.Before(bT)
	}
	return aSeq < bSeq
}

func ordenarGenerales(in []*entity.SeguimientoGeneral) []*entity.SeguimientoGeneral {
	out := make([]*entity.SeguimientoGeneral, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return antes(out[i].CreatedAt, out[i].Secuencia, out[j].CreatedAt, out[j].Secuencia)
	})
	return out
}

func ordenarActividad(in []*entity.SeguimientoActividad) []*entity.SeguimientoActividad {
	out := make([]*entity.SeguimientoActividad, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return antes(out[i].CreatedAt, out[i].Secuencia, out[j].CreatedAt, out[j].Secuencia)
	})
	return out
}
