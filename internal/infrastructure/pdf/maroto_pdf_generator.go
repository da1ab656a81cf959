// Package pdf genera el informe de avance de un contrato.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Contrato + Contratista  │  Estado + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Objeto / Supervisor / Plazo                          │
//	│  VALORES: Inicial | Total | Ejecutado | Por ejecutar         │
//	│  AVANCE: Físico | Financiero | Diferencia | Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FRENTES: Cuo → Actividad | Meta | Acumulado | % | Costo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: Fecha | Tipo | Detalle                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/pkg/moneda"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ seguimiento.ContratoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa seguimiento.ContratoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateContratoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateContratoPDF(_ context.Context, data *seguimiento.ContratoReportData) ([]byte, error) {
	if data == nil || data.Contrato == nil {
		return nil, fmt.Errorf("pdf: datos del informe vacíos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de avance "+data.Contrato.NumeroContrato, true).
		WithAuthor(data.GeneradoPor, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datosRow(data))
	m.AddRows(valoresRow(data.Progreso))
	m.AddRows(avanceRow(data.Progreso))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("FRENTES DE OBRA"))
	if len(data.Cuos) == 0 {
		m.AddRows(emptyRow("El contrato no tiene frentes de obra registrados."))
	}
	for _, cuo := range data.Cuos {
		m.AddRows(cuoRows(cuo)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("HISTORIAL"))
	if len(data.Historial) == 0 {
		m.AddRows(emptyRow("Sin adiciones, modificaciones ni seguimientos."))
	} else {
		m.AddRows(historialHeaderRow())
		m.AddRows(historialRows(data.Historial)...)
	}

	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data *seguimiento.ContratoReportData) core.Row {
	c := data.Contrato
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Contrato "+c.NumeroContrato, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Contratista, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE AVANCE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(estadoLabel(data.Progreso.EstadoAvance), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
				Color: estadoColor(data.Progreso.EstadoAvance),
			}),
			text.New("Generado: "+data.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func datosRow(data *seguimiento.ContratoReportData) core.Row {
	c := data.Contrato
	return row.New(20).Add(
		col.New(12).Add(
			text.New("OBJETO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(c.Objeto, "-"), props.Text{Size: 8, Top: 5}),
			text.New(fmt.Sprintf("Supervisor: %s   |   Inicio: %s   |   Terminación inicial: %s   |   Terminación actual: %s",
				c.UsuarioCedula,
				c.FechaInicio.Format("02/01/2006"),
				c.FechaTerminacionInicial.Format("02/01/2006"),
				c.FechaTerminacionActual.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

func valoresRow(p progress.ContratoProgress) core.Row {
	return row.New(14).Add(
		cifraCol("Valor inicial", moneda.Pesos(p.ValorInicial)),
		cifraCol("Valor total", moneda.Pesos(p.ValorTotal)),
		cifraCol("Ejecutado", moneda.Pesos(p.ValorEjecutado)),
		cifraCol("Por ejecutar", moneda.Pesos(p.ValorPorEjecutar)),
	)
}

func avanceRow(p progress.ContratoProgress) core.Row {
	return row.New(14).Add(
		cifraCol("Avance físico", moneda.Porcentaje(p.AvanceFisico)),
		cifraCol("Avance financiero", moneda.Porcentaje(p.PorcentajeFinanciero)),
		cifraCol("Diferencia", moneda.Porcentaje(p.DiferenciaAvance)),
		cifraCol("Reportes", fmt.Sprintf("%d", p.CantidadReportes)),
	)
}

func cifraCol(label, value string) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center}),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func emptyRow(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

// cuoRows: encabezado del frente y una fila por actividad.
func cuoRows(r seguimiento.CuoReport) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("CUO %s   %s / %s", r.Cuo.Numero, nonEmpty(r.Cuo.Comuna, "-"), nonEmpty(r.Cuo.Barrio, "-")), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)),
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows = append(rows, row.New(5).Add(
		h("Actividad", 4, align.Left),
		h("Meta", 2, align.Right),
		h("Acumulado", 2, align.Right),
		h("% meta", 1, align.Right),
		h("Costo", 2, align.Right),
		h("% costo", 1, align.Right),
	))
	for _, a := range r.Actividades {
		unidades := a.Metadata.UnidadesAvance
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(a.Metadata.Nombre, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(moneda.Cantidad(a.Metadata.MetaFisica)+" "+unidades, props.Text{Size: 7, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(moneda.Cantidad(a.Acumulado.AvanceAcumulado), props.Text{Size: 7, Top: 1, Align: align.Right, Right: 1})),
			col.New(1).Add(text.New(moneda.Porcentaje(a.Acumulado.PorcentajeMeta), props.Text{Size: 7, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(moneda.Pesos(a.Acumulado.CostoAcumulado), props.Text{Size: 7, Top: 1, Align: align.Right, Right: 1})),
			col.New(1).Add(text.New(moneda.Porcentaje(a.Acumulado.PorcentajeCosto), props.Text{Size: 7, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func historialHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1, Left: 1,
		}))
	}
	return row.New(5).Add(h("Fecha", 2), h("Tipo", 2), h("Detalle", 8))
}

func historialRows(eventos []progress.EventoHistorial) []core.Row {
	result := make([]core.Row, 0, len(eventos))
	for _, e := range eventos {
		result = append(result, row.New(5).Add(
			col.New(2).Add(text.New(e.CreatedAt.Format("02/01/2006"), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(e.Tipo, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(8).Add(text.New(detalle(e), props.Text{Size: 7, Top: 1, Left: 1})),
		))
	}
	return result
}

// detalle resume el evento en una línea.
func detalle(e progress.EventoHistorial) string {
	switch {
	case e.Adicion != nil:
		return fmt.Sprintf("Adición por %s (%s)", moneda.Pesos(e.Adicion.ValorAdicion), e.Adicion.Fecha.Format("02/01/2006"))
	case e.Modificacion != nil:
		m := e.Modificacion
		return fmt.Sprintf("%s de %d días: %s a %s", m.Tipo, m.Duracion, m.FechaInicio.Format("02/01/2006"), m.FechaFinal.Format("02/01/2006"))
	case e.Seguimiento != nil:
		s := e.Seguimiento
		return fmt.Sprintf("Ejecutado %s, avance físico %s", moneda.Pesos(s.AvanceFinanciero), moneda.Porcentaje(s.AvanceFisico))
	}
	return ""
}

func footerRow(data *seguimiento.ContratoReportData) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Informe generado por %s. Las cifras se calculan a partir del historial completo del contrato.",
			nonEmpty(data.GeneradoPor, "el sistema")),
			props.Text{Size: 6.5, Color: colorGray, Top: 4},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func estadoLabel(estado string) string {
	switch estado {
	case progress.EstadoAvanceRetrasoFisico:
		return "RETRASO FÍSICO"
	case progress.EstadoAvanceAdelantoFisico:
		return "ADELANTO FÍSICO"
	case progress.EstadoAvanceSinReporte:
		return "SIN REPORTE"
	}
	return "NORMAL"
}

func estadoColor(estado string) *props.Color {
	switch estado {
	case progress.EstadoAvanceRetrasoFisico:
		return colorRed
	case progress.EstadoAvanceAdelantoFisico:
		return colorGreen
	case progress.EstadoAvanceSinReporte:
		return colorGray
	}
	return colorPrimary
}
