package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas calendario en requests y responses (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CreateContratoRequest entrada para POST /api/contratos (solo ADMIN).
type CreateContratoRequest struct {
	NumeroContrato      string          `json:"numero_contrato" validate:"required"`
	IdentificadorSimple string          `json:"identificador_simple"`
	Objeto              string          `json:"objeto" validate:"required"`
	Contratista         string          `json:"contratista" validate:"required"`
	ValorInicial        decimal.Decimal `json:"valor_inicial"`
	FechaInicio         string          `json:"fecha_inicio" validate:"required"`      // YYYY-MM-DD
	FechaTerminacion    string          `json:"fecha_terminacion" validate:"required"` // YYYY-MM-DD
	UsuarioCedula       string          `json:"usuario_cedula" validate:"required"`
}

// ContratoResponse salida de un contrato con su envolvente actual.
type ContratoResponse struct {
	ID                      int64           `json:"id"`
	NumeroContrato          string          `json:"numero_contrato"`
	IdentificadorSimple     string          `json:"identificador_simple"`
	Objeto                  string          `json:"objeto"`
	Contratista             string          `json:"contratista"`
	ValorInicial            decimal.Decimal `json:"valor_inicial"`
	ValorTotal              decimal.Decimal `json:"valor_total"`
	FechaInicio             string          `json:"fecha_inicio"`
	FechaTerminacionInicial string          `json:"fecha_terminacion_inicial"`
	FechaTerminacionActual  string          `json:"fecha_terminacion_actual"`
	Estado                  string          `json:"estado"`
	UsuarioCedula           string          `json:"usuario_cedula"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// ContratoListResponse lista paginada de contratos.
type ContratoListResponse struct {
	Items []ContratoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// EnvelopeResponse valor y plazo vigentes del contrato después de una mutación.
type EnvelopeResponse struct {
	ContratoID              int64           `json:"contrato_id"`
	ValorInicial            decimal.Decimal `json:"valor_inicial"`
	ValorTotal              decimal.Decimal `json:"valor_total"`
	FechaTerminacionInicial string          `json:"fecha_terminacion_inicial"`
	FechaTerminacionActual  string          `json:"fecha_terminacion_actual"`
}
