package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCuoRequest body para POST /api/contratos/:id/cuos.
type CreateCuoRequest struct {
	Numero      string  `json:"numero" validate:"required"`
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
	Comuna      string  `json:"comuna"`
	Barrio      string  `json:"barrio"`
	Descripcion string  `json:"descripcion"`
}

// CuoResponse salida de un frente de obra.
type CuoResponse struct {
	ID                  int64     `json:"id"`
	ContratoID          int64     `json:"contrato_id"`
	Numero              string    `json:"numero"`
	Latitud             float64   `json:"latitud"`
	Longitud            float64   `json:"longitud"`
	Comuna              string    `json:"comuna"`
	Barrio              string    `json:"barrio"`
	Descripcion         string    `json:"descripcion"`
	CantidadActividades int       `json:"cantidad_actividades"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreateActividadRequest body para POST /api/cuos/:id/actividades.
type CreateActividadRequest struct {
	Nombre               string          `json:"nombre" validate:"required"`
	MetaFisica           decimal.Decimal `json:"meta_fisica"`
	ProyectadoFinanciero decimal.Decimal `json:"proyectado_financiero"`
	UnidadesAvance       string          `json:"unidades_avance"`
}

// ActividadResponse salida de una actividad.
type ActividadResponse struct {
	ID                   int64           `json:"id"`
	CuoID                int64           `json:"cuo_id"`
	ContratoID           int64           `json:"contrato_id"`
	Nombre               string          `json:"nombre"`
	MetaFisica           decimal.Decimal `json:"meta_fisica"`
	ProyectadoFinanciero decimal.Decimal `json:"proyectado_financiero"`
	UnidadesAvance       string          `json:"unidades_avance"`
	CreatedAt            time.Time       `json:"created_at"`
}

// CuoProgressResponse frente de obra con el avance de cada una de sus actividades.
type CuoProgressResponse struct {
	Cuo         CuoResponse                 `json:"cuo"`
	Actividades []ActividadProgressResponse `json:"actividades"`
}
