// Package excel exporta la línea de tiempo de un contrato a XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
)

// Nombres de hoja del libro exportado.
const (
	SheetHistorial = "Historial"
	SheetResumen   = "Resumen"
)

var _ seguimiento.HistorialExporter = (*HistorialExporter)(nil)

// HistorialExporter escribe una hoja con cada evento y otra con el avance vigente.
type HistorialExporter struct{}

// NewHistorialExporter construye el exportador.
func NewHistorialExporter() *HistorialExporter {
	return &HistorialExporter{}
}

// ExportHistorial devuelve el libro XLSX en bytes.
func (e *HistorialExporter) ExportHistorial(_ context.Context, data *seguimiento.ContratoReportData) ([]byte, error) {
	if data == nil || data.Contrato == nil {
		return nil, fmt.Errorf("excel: datos del informe vacíos")
	}
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	file.SetSheetName("Sheet1", SheetHistorial)
	if err := writeHistorial(file, SheetHistorial, data.Historial); err != nil {
		return nil, err
	}
	if _, err := file.NewSheet(SheetResumen); err != nil {
		return nil, fmt.Errorf("excel: crear hoja resumen: %w", err)
	}
	writeResumen(file, SheetResumen, data)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

var historialHeaders = []string{
	"Fecha registro",
	"Tipo",
	"Valor",
	"Avance físico",
	"Fecha inicio",
	"Fecha final",
	"Duración (días)",
	"Observaciones",
	"Registrado por",
}

func writeHistorial(file *excelize.File, sheet string, eventos []progress.EventoHistorial) error {
	for i, header := range historialHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = file.SetCellValue(sheet, cell, header)
	}

	for i, e := range eventos {
		row := i + 2
		set := func(colName string, value interface{}) {
			_ = file.SetCellValue(sheet, fmt.Sprintf("%s%d", colName, row), value)
		}
		set("A", e.CreatedAt.Format("2006-01-02 15:04:05"))
		set("B", e.Tipo)
		switch {
		case e.Adicion != nil:
			set("C", toFloat(e.Adicion.ValorAdicion))
			set("E", e.Adicion.Fecha.Format("2006-01-02"))
			set("H", e.Adicion.Observaciones)
			set("I", e.Adicion.CreatedBy)
		case e.Modificacion != nil:
			m := e.Modificacion
			set("B", e.Tipo+" "+m.Tipo)
			set("E", m.FechaInicio.Format("2006-01-02"))
			set("F", m.FechaFinal.Format("2006-01-02"))
			set("G", m.Duracion)
			set("H", m.Observaciones)
			set("I", m.CreatedBy)
		case e.Seguimiento != nil:
			s := e.Seguimiento
			set("C", toFloat(s.AvanceFinanciero))
			set("D", toFloat(s.AvanceFisico))
			set("H", s.Observaciones)
			set("I", s.CreatedBy)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 26)
	_ = file.SetColWidth(sheet, "C", "G", 16)
	_ = file.SetColWidth(sheet, "H", "H", 48)
	_ = file.SetColWidth(sheet, "I", "I", 16)
	return nil
}

func writeResumen(file *excelize.File, sheet string, data *seguimiento.ContratoReportData) {
	c := data.Contrato
	p := data.Progreso
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	rows := [][2]interface{}{
		{"Número de contrato", c.NumeroContrato},
		{"Objeto", c.Objeto},
		{"Contratista", c.Contratista},
		{"Supervisor", c.UsuarioCedula},
		{"Valor inicial", toFloat(p.ValorInicial)},
		{"Valor total", toFloat(p.ValorTotal)},
		{"Valor ejecutado", toFloat(p.ValorEjecutado)},
		{"Valor por ejecutar", toFloat(p.ValorPorEjecutar)},
		{"Avance físico (%)", toFloat(p.AvanceFisico)},
		{"Avance financiero (%)", toFloat(p.PorcentajeFinanciero)},
		{"Diferencia", toFloat(p.DiferenciaAvance)},
		{"Estado de avance", p.EstadoAvance},
		{"Fecha terminación inicial", c.FechaTerminacionInicial.Format("2006-01-02")},
		{"Fecha terminación actual", p.FechaTerminacionActual.Format("2006-01-02")},
		{"Reportes", p.CantidadReportes},
		{"Generado", data.GeneradoEn.Format("2006-01-02 15:04:05")},
	}
	for i, r := range rows {
		set(fmt.Sprintf("A%d", i+1), r[0])
		set(fmt.Sprintf("B%d", i+1), r[1])
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 40)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
