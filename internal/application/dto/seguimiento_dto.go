package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSeguimientoGeneralRequest body para POST /api/contratos/:id/seguimientos.
// Las cifras son absolutas acumuladas a la fecha del reporte; ambas son obligatorias
// (un campo ausente no equivale a cero).
type CreateSeguimientoGeneralRequest struct {
	AvanceFinanciero decimal.NullDecimal `json:"avance_financiero" swaggertype:"string"`
	AvanceFisico     decimal.NullDecimal `json:"avance_fisico" swaggertype:"string"` // 0-100
	Observaciones    string              `json:"observaciones"`
}

// SeguimientoGeneralResponse salida de un reporte del contrato.
type SeguimientoGeneralResponse struct {
	ID               string          `json:"id"`
	ContratoID       int64           `json:"contrato_id"`
	AvanceFinanciero decimal.Decimal `json:"avance_financiero"`
	AvanceFisico     decimal.Decimal `json:"avance_fisico"`
	Observaciones    string          `json:"observaciones"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        string          `json:"created_by"`
}

// ContratoProgressResponse vista de avance del contrato.
type ContratoProgressResponse struct {
	ContratoID             int64           `json:"contrato_id"`
	Reportado              bool            `json:"reportado"`
	ValorInicial           decimal.Decimal `json:"valor_inicial"`
	ValorTotal             decimal.Decimal `json:"valor_total"`
	ValorEjecutado         decimal.Decimal `json:"valor_ejecutado"`
	ValorPorEjecutar       decimal.Decimal `json:"valor_por_ejecutar"`
	AvanceFisico           decimal.Decimal `json:"avance_fisico"`
	PorcentajeFinanciero   decimal.Decimal `json:"porcentaje_financiero"`
	DiferenciaAvance       decimal.Decimal `json:"diferencia_avance"`
	EstadoAvance           string          `json:"estado_avance"`
	FechaTerminacionActual string          `json:"fecha_terminacion_actual"`
	Observaciones          string          `json:"observaciones,omitempty"`
	UltimoReporte          *time.Time      `json:"ultimo_reporte,omitempty"`
	CantidadReportes       int             `json:"cantidad_reportes"`
}

// SeguimientoGeneralResult reporte creado más el avance recalculado.
type SeguimientoGeneralResult struct {
	Seguimiento SeguimientoGeneralResponse `json:"seguimiento"`
	Progreso    ContratoProgressResponse   `json:"progreso"`
}

// CreateSeguimientoActividadRequest body para POST /api/actividades/:id/seguimientos.
// Las cifras son del periodo (incrementales).
type CreateSeguimientoActividadRequest struct {
	AvanceFisico           decimal.NullDecimal `json:"avance_fisico" swaggertype:"string"`
	CostoAproximado        decimal.NullDecimal `json:"costo_aproximado" swaggertype:"string"`
	DescripcionSeguimiento string              `json:"descripcion_seguimiento"`
	ProyeccionActividades  string              `json:"proyeccion_actividades"`
}

// SeguimientoActividadResponse salida de un reporte de actividad con la suma corrida hasta él.
type SeguimientoActividadResponse struct {
	ID                     string           `json:"id"`
	ActividadID            int64            `json:"actividad_id"`
	AvanceFisico           decimal.Decimal  `json:"avance_fisico"`
	CostoAproximado        decimal.Decimal  `json:"costo_aproximado"`
	DescripcionSeguimiento string           `json:"descripcion_seguimiento"`
	ProyeccionActividades  string           `json:"proyeccion_actividades"`
	AvanceAcumulado        *decimal.Decimal `json:"avance_acumulado,omitempty"`
	CostoAcumulado         *decimal.Decimal `json:"costo_acumulado,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	CreatedBy              string           `json:"created_by"`
}

// ActividadMetadataResponse datos estáticos de la actividad.
type ActividadMetadataResponse struct {
	ActividadID          int64           `json:"actividad_id"`
	CuoID                int64           `json:"cuo_id"`
	ContratoID           int64           `json:"contrato_id"`
	Nombre               string          `json:"nombre"`
	MetaFisica           decimal.Decimal `json:"meta_fisica"`
	ProyectadoFinanciero decimal.Decimal `json:"proyectado_financiero"`
	UnidadesAvance       string          `json:"unidades_avance"`
}

// ReporteActividadResponse solo presente cuando la actividad tiene reportes.
type ReporteActividadResponse struct {
	DescripcionSeguimiento string                         `json:"descripcion_seguimiento"`
	ProyeccionActividades  string                         `json:"proyeccion_actividades"`
	UltimoReporte          time.Time                      `json:"ultimo_reporte"`
	CantidadReportes       int                            `json:"cantidad_reportes"`
	Historial              []SeguimientoActividadResponse `json:"historial"`
}

// ActividadProgressResponse avance de una actividad. Tipo: REPORTADO o SIN_REPORTE.
type ActividadProgressResponse struct {
	Tipo            string                    `json:"tipo"`
	Actividad       ActividadMetadataResponse `json:"actividad"`
	AvanceAcumulado decimal.Decimal           `json:"avance_acumulado"`
	CostoAcumulado  decimal.Decimal           `json:"costo_acumulado"`
	PorcentajeMeta  decimal.Decimal           `json:"porcentaje_meta"`
	PorcentajeCosto decimal.Decimal           `json:"porcentaje_costo"`
	Reporte         *ReporteActividadResponse `json:"reporte,omitempty"`
}

// SeguimientoActividadResult reporte creado más el avance recalculado de la actividad.
type SeguimientoActividadResult struct {
	Seguimiento SeguimientoActividadResponse `json:"seguimiento"`
	Progreso    ActividadProgressResponse    `json:"progreso"`
}

// HistorialEntryResponse entrada de la línea de tiempo; Tipo: ADICION, MODIFICACION o SEGUIMIENTO.
type HistorialEntryResponse struct {
	Tipo         string                      `json:"tipo"`
	CreatedAt    time.Time                   `json:"created_at"`
	Adicion      *AdicionResponse            `json:"adicion,omitempty"`
	Modificacion *ModificacionResponse       `json:"modificacion,omitempty"`
	Seguimiento  *SeguimientoGeneralResponse `json:"seguimiento,omitempty"`
}

// HistorialResponse línea de tiempo completa del contrato.
type HistorialResponse struct {
	ContratoID int64                    `json:"contrato_id"`
	Items      []HistorialEntryResponse `json:"items"`
}
