package progress

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
)

// Decimales admitidos; coinciden con las columnas NUMERIC del esquema.
const (
	EscalaMonetaria int32 = 2 // pesos: NUMERIC(20,2)
	EscalaFisica    int32 = 4 // porcentajes y cantidades: NUMERIC(7,4) y NUMERIC(20,4)
)

// ValidarEscala rechaza cifras con más decimales significativos que escala.
// "1.50" y "1.500" pasan con escala 2; "1.505" no.
func ValidarEscala(field string, d decimal.Decimal, escala int32) error {
	if !d.Equal(d.Truncate(escala)) {
		return domain.Invalid(field, fmt.Sprintf("admite máximo %d decimales", escala))
	}
	return nil
}
