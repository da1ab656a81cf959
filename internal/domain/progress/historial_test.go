package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

func TestHistorial_MezclaEnOrdenTotal(t *testing.T) {
	adiciones := []*entity.Adicion{{ID: "a", CreatedAt: t0.Add(2 * time.Hour), Secuencia: 3}}
	modificaciones := []*entity.Modificacion{{ID: "m", CreatedAt: t0, Secuencia: 2}}
	seguimientos := []*entity.SeguimientoGeneral{
		{ID: "s1", CreatedAt: t0, Secuencia: 1},
		{ID: "s2", CreatedAt: t0.Add(3 * time.Hour), Secuencia: 4},
	}

	eventos := progress.Historial(adiciones, modificaciones, seguimientos)

	require.Len(t, eventos, 4)
	tipos := make([]string, 0, len(eventos))
	for _, e := range eventos {
		tipos = append(tipos, e.Tipo)
	}
	assert.Equal(t, []string{
		progress.EventoSeguimiento, progress.EventoModificacion, progress.EventoAdicion, progress.EventoSeguimiento,
	}, tipos)
	assert.Equal(t, "m", eventos[1].Modificacion.ID)
	assert.Nil(t, eventos[1].Adicion)
}

func TestHistorial_Vacio(t *testing.T) {
	assert.Empty(t, progress.Historial(nil, nil, nil))
}
