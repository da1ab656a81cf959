// Package moneda formatea cifras en pesos colombianos para informes.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Pesos formatea un valor redondeado a pesos con separadores de miles: "$ 1.250.000".
func Pesos(v decimal.Decimal) string {
	return printer.Sprintf("$ %d", v.Round(0).IntPart())
}

// Porcentaje formatea con dos decimales: "45,73 %".
func Porcentaje(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%.2f %%", f)
}

// Cantidad formatea una cantidad física con hasta dos decimales.
func Cantidad(v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return printer.Sprintf("%d", v.IntPart())
	}
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
