package progress

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Variantes de ActividadProgress.
const (
	ActividadReportada  = "REPORTADO"
	ActividadSinReporte = "SIN_REPORTE"
)

// ActividadMetadata datos estáticos de la actividad, presentes en ambas variantes.
type ActividadMetadata struct {
	ActividadID          int64
	CuoID                int64
	ContratoID           int64
	Nombre               string
	MetaFisica           decimal.Decimal
	ProyectadoFinanciero decimal.Decimal
	UnidadesAvance       string
}

// AcumuladoActividad cifras acumuladas; todas en cero si no hay reportes.
type AcumuladoActividad struct {
	AvanceAcumulado decimal.Decimal
	CostoAcumulado  decimal.Decimal
	PorcentajeMeta  decimal.Decimal // avance/meta*100, 2 decimales
	PorcentajeCosto decimal.Decimal // costo/proyectado*100, 2 decimales
}

// SeguimientoAcumulado un reporte junto con la suma corrida hasta él (inclusive).
type SeguimientoAcumulado struct {
	Seguimiento     entity.SeguimientoActividad
	AvanceAcumulado decimal.Decimal
	CostoAcumulado  decimal.Decimal
}

// ReporteActividad parte que solo existe cuando hay al menos un reporte.
type ReporteActividad struct {
	DescripcionSeguimiento string
	ProyeccionActividades  string
	UltimoReporte          time.Time
	CantidadReportes       int
	Historial              []SeguimientoAcumulado
}

// ActividadProgress variante etiquetada: Tipo REPORTADO trae Reporte, SIN_REPORTE no.
type ActividadProgress struct {
	Tipo      string
	Metadata  ActividadMetadata
	Acumulado AcumuladoActividad
	Reporte   *ReporteActividad
}

// Reportada indica si la actividad tiene al menos un reporte.
func (p ActividadProgress) Reportada() bool { return p.Tipo == ActividadReportada }

// EstadoActividad re-suma toda la historia de la actividad. Los valores numéricos nunca
// se toman solo del último reporte; la narrativa sí.
func EstadoActividad(a entity.Actividad, historial []*entity.SeguimientoActividad) ActividadProgress {
	out := ActividadProgress{
		Tipo: ActividadSinReporte,
		Metadata: ActividadMetadata{
			ActividadID:          a.ID,
			CuoID:                a.CuoID,
			ContratoID:           a.ContratoID,
			Nombre:               a.Nombre,
			MetaFisica:           a.MetaFisica,
			ProyectadoFinanciero: a.ProyectadoFinanciero,
			UnidadesAvance:       a.UnidadesAvance,
		},
		Acumulado: AcumuladoActividad{
			AvanceAcumulado: decimal.Zero,
			CostoAcumulado:  decimal.Zero,
			PorcentajeMeta:  decimal.Zero,
			PorcentajeCosto: decimal.Zero,
		},
	}

	ordenados := ordenarActividad(historial)
	if len(ordenados) == 0 {
		return out
	}

	corridas := make([]SeguimientoAcumulado, 0, len(ordenados))
	acc := Fold(Acumulacion, nil)
	for _, s := range ordenados {
		acc = Acumulacion.Combinar(acc, DeActividad(s))
		corridas = append(corridas, SeguimientoAcumulado{
			Seguimiento:     *s,
			AvanceAcumulado: acc.Fisico,
			CostoAcumulado:  acc.Valor,
		})
	}
	ultimo := ordenados[len(ordenados)-1]

	out.Tipo = ActividadReportada
	out.Acumulado = AcumuladoActividad{
		AvanceAcumulado: acc.Fisico,
		CostoAcumulado:  acc.Valor,
		PorcentajeMeta:  Porcentaje(acc.Fisico, a.MetaFisica).Round(2),
		PorcentajeCosto: Porcentaje(acc.Valor, a.ProyectadoFinanciero).Round(2),
	}
	out.Reporte = &ReporteActividad{
		DescripcionSeguimiento: ultimo.DescripcionSeguimiento,
		ProyeccionActividades:  ultimo.ProyeccionActividades,
		UltimoReporte:          ultimo.CreatedAt,
		CantidadReportes:       len(ordenados),
		Historial:              corridas,
	}
	return out
}
