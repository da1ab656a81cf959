package moneda_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/seguimiento-contratos/pkg/moneda"
)

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestPesos_RedondeaYConservaDigitos(t *testing.T) {
	out := moneda.Pesos(decimal.RequireFromString("150000000.60"))
	assert.True(t, strings.HasPrefix(out, "$ "))
	assert.Equal(t, "150000001", soloDigitos(out))
}

func TestPorcentaje_DosDecimales(t *testing.T) {
	out := moneda.Porcentaje(decimal.RequireFromString("45.7333"))
	assert.Equal(t, "4573", soloDigitos(out))
	assert.True(t, strings.HasSuffix(out, "%"))
}

func TestCantidad_EnteraSinDecimales(t *testing.T) {
	assert.Equal(t, "8", moneda.Cantidad(decimal.NewFromInt(8)))
	assert.Equal(t, "250", soloDigitos(moneda.Cantidad(decimal.RequireFromString("2.5"))))
}
