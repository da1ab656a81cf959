package progress_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func contratoBase(valorTotal string) entity.Contrato {
	return entity.Contrato{
		ID:                     7,
		ValorInicial:           dec(valorTotal),
		ValorTotal:             dec(valorTotal),
		FechaInicio:            time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		FechaTerminacionActual: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func general(seq int64, at time.Time, financiero, fisico string) *entity.SeguimientoGeneral {
	return &entity.SeguimientoGeneral{
		ID:               "sg",
		ContratoID:       7,
		AvanceFinanciero: dec(financiero),
		AvanceFisico:     dec(fisico),
		CreatedAt:        at,
		Secuencia:        seq,
	}
}

func TestEstadoContrato_SinReportes_EstadoCero(t *testing.T) {
	out := progress.EstadoContrato(contratoBase("328000000"), nil, progress.DefaultUmbrales())

	assert.False(t, out.Reportado)
	assert.True(t, out.ValorEjecutado.IsZero())
	assert.True(t, out.AvanceFisico.IsZero())
	assert.Equal(t, progress.EstadoAvanceSinReporte, out.EstadoAvance)
	assert.Nil(t, out.UltimoReporte)
	assert.True(t, out.ValorPorEjecutar.Equal(dec("328000000")))
}

// Escenario D: el último reporte manda y se calcula la diferencia contra el valor total.
func TestEstadoContrato_EscenarioD(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{
		general(1, t0, "100000000", "40"),
		general(2, t0.Add(time.Hour), "150000000", "42"),
	}
	out := progress.EstadoContrato(contratoBase("328000000"), historial, progress.DefaultUmbrales())

	require.True(t, out.Reportado)
	assert.True(t, out.ValorEjecutado.Equal(dec("150000000")))
	assert.Equal(t, "45.73", out.PorcentajeFinanciero.StringFixed(2))
	assert.Equal(t, "-3.73", out.DiferenciaAvance.StringFixed(2))
	assert.Equal(t, progress.EstadoAvanceNormal, out.EstadoAvance)
	assert.Equal(t, 2, out.CantidadReportes)
	assert.True(t, out.ValorPorEjecutar.Equal(dec("178000000")))
}

// El reporte del contrato es absoluto: una corrección a la baja reemplaza, no se suma.
func TestEstadoContrato_ReporteAbsolutoNoSumado(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{
		general(1, t0, "200000000", "60"),
		general(2, t0.Add(time.Minute), "90000000", "30"),
	}
	out := progress.EstadoContrato(contratoBase("300000000"), historial, progress.DefaultUmbrales())

	assert.True(t, out.ValorEjecutado.Equal(dec("90000000")))
	assert.True(t, out.AvanceFisico.Equal(dec("30")))
}

// El orden total usa la secuencia cuando los timestamps empatan, nunca el valor.
func TestEstadoContrato_EmpateDeFechaUsaSecuencia(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{
		general(9, t0, "10", "1"),
		general(3, t0, "999", "99"),
	}
	out := progress.EstadoContrato(contratoBase("1000"), historial, progress.DefaultUmbrales())

	assert.True(t, out.ValorEjecutado.Equal(dec("10")), "gana la secuencia mayor")
}

func TestEstadoContrato_ValorTotalCero_GuardaDeDivision(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{general(1, t0, "5000", "20")}
	out := progress.EstadoContrato(contratoBase("0"), historial, progress.DefaultUmbrales())

	assert.True(t, out.PorcentajeFinanciero.IsZero())
	assert.Equal(t, "20.00", out.DiferenciaAvance.StringFixed(2))
	assert.Equal(t, progress.EstadoAvanceAdelantoFisico, out.EstadoAvance)
}

// Una adición cambia el porcentaje financiero en la siguiente lectura sin reporte nuevo.
func TestEstadoContrato_ReflejaEnvolventeActual(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{general(1, t0, "500", "40")}
	c := contratoBase("1000")

	antes := progress.EstadoContrato(c, historial, progress.DefaultUmbrales())
	assert.Equal(t, progress.EstadoAvanceRetrasoFisico, antes.EstadoAvance)

	c.ValorTotal = dec("1250")
	despues := progress.EstadoContrato(c, historial, progress.DefaultUmbrales())
	assert.Equal(t, "40.00", despues.PorcentajeFinanciero.StringFixed(2))
	assert.Equal(t, progress.EstadoAvanceNormal, despues.EstadoAvance)
}

func TestEstadoContrato_LecturaIdempotente(t *testing.T) {
	historial := []*entity.SeguimientoGeneral{general(1, t0, "100", "10"), general(2, t0.Add(time.Second), "150", "12")}
	c := contratoBase("328")

	a := progress.EstadoContrato(c, historial, progress.DefaultUmbrales())
	b := progress.EstadoContrato(c, historial, progress.DefaultUmbrales())
	assert.Equal(t, a, b)
}

func TestClasificar_Bandas(t *testing.T) {
	u := progress.DefaultUmbrales()
	cases := []struct {
		diferencia string
		esperado   string
	}{
		{"0", progress.EstadoAvanceNormal},
		{"5", progress.EstadoAvanceNormal},
		{"-5", progress.EstadoAvanceNormal},
		{"5.01", progress.EstadoAvanceAdelantoFisico},
		{"-5.01", progress.EstadoAvanceRetrasoFisico},
		{"-30", progress.EstadoAvanceRetrasoFisico},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, progress.Clasificar(dec(tc.diferencia), u), "diferencia %s", tc.diferencia)
	}
}

func TestClasificar_UmbralesConfigurables(t *testing.T) {
	u := progress.Umbrales{Retraso: dec("10"), Adelanto: dec("2")}

	assert.Equal(t, progress.EstadoAvanceNormal, progress.Clasificar(dec("-8"), u))
	assert.Equal(t, progress.EstadoAvanceAdelantoFisico, progress.Clasificar(dec("3"), u))
}
