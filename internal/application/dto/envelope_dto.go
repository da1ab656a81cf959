package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAdicionRequest body para POST /api/contratos/:id/adiciones.
type CreateAdicionRequest struct {
	ValorAdicion  decimal.Decimal `json:"valor_adicion"`
	Fecha         string          `json:"fecha" validate:"required"` // YYYY-MM-DD
	Observaciones string          `json:"observaciones"`
}

// AdicionResponse salida de una adición registrada.
type AdicionResponse struct {
	ID            string          `json:"id"`
	ContratoID    int64           `json:"contrato_id"`
	ValorAdicion  decimal.Decimal `json:"valor_adicion"`
	Fecha         string          `json:"fecha"`
	Observaciones string          `json:"observaciones"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// AdicionResult adición creada más la envolvente resultante.
type AdicionResult struct {
	Adicion  AdicionResponse  `json:"adicion"`
	Contrato EnvelopeResponse `json:"contrato"`
}

// CreateModificacionRequest body para POST /api/contratos/:id/modificaciones.
type CreateModificacionRequest struct {
	Tipo          string `json:"tipo" validate:"required,oneof=PRORROGA SUSPENSION MODIFICACION"`
	FechaInicio   string `json:"fecha_inicio" validate:"required"`
	FechaFinal    string `json:"fecha_final" validate:"required"`
	Observaciones string `json:"observaciones"`
}

// ModificacionResponse salida de una modificación registrada; Duracion en días inclusivos.
type ModificacionResponse struct {
	ID            string    `json:"id"`
	ContratoID    int64     `json:"contrato_id"`
	Tipo          string    `json:"tipo"`
	FechaInicio   string    `json:"fecha_inicio"`
	FechaFinal    string    `json:"fecha_final"`
	Duracion      int       `json:"duracion"`
	Observaciones string    `json:"observaciones"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
}

// ModificacionResult modificación creada más la envolvente resultante.
type ModificacionResult struct {
	Modificacion ModificacionResponse `json:"modificacion"`
	Contrato     EnvelopeResponse     `json:"contrato"`
}
