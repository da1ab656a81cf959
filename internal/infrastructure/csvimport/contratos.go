// Package csvimport lee contratos desde exportaciones CSV (SECOP, hojas de la secretaría).
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
)

// Encabezados obligatorios, en cualquier orden. identificador_simple es opcional.
var requeridas = []string{
	"numero_contrato",
	"objeto",
	"contratista",
	"valor_inicial",
	"fecha_inicio",
	"fecha_terminacion",
	"usuario_cedula",
}

// Options controla la lectura del archivo.
type Options struct {
	Latin1    bool // el archivo viene en ISO-8859-1 (exportaciones de Excel en Windows)
	Delimiter rune // por defecto ';'
}

// RowError error de una fila concreta; Line es 1-based incluyendo el encabezado.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// ReadContratos convierte cada fila en un CreateContratoRequest.
// Las filas con errores se devuelven aparte para que el llamador decida si continúa.
func ReadContratos(r io.Reader, opts Options) ([]dto.CreateContratoRequest, []*RowError, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("csv: archivo vacío")
		}
		return nil, nil, fmt.Errorf("csv: leer encabezado: %w", err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    []dto.CreateContratoRequest
		fallas []*RowError
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				fallas = append(fallas, &RowError{Line: pe.Line, Err: pe.Err})
				continue
			}
			return out, fallas, fmt.Errorf("csv: leer fila: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		req, err := toRequest(rec, idx)
		if err != nil {
			fallas = append(fallas, &RowError{Line: line, Err: err})
			continue
		}
		out = append(out, req)
	}
	return out, fallas, nil
}

func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		idx[h] = i
	}
	var faltan []string
	for _, c := range requeridas {
		if _, ok := idx[c]; !ok {
			faltan = append(faltan, c)
		}
	}
	if len(faltan) > 0 {
		return nil, fmt.Errorf("csv: faltan columnas %s", strings.Join(faltan, ", "))
	}
	return idx, nil
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func toRequest(rec []string, idx map[string]int) (dto.CreateContratoRequest, error) {
	valor, err := ParseValor(field(rec, idx, "valor_inicial"))
	if err != nil {
		return dto.CreateContratoRequest{}, err
	}
	return dto.CreateContratoRequest{
		NumeroContrato:      field(rec, idx, "numero_contrato"),
		IdentificadorSimple: field(rec, idx, "identificador_simple"),
		Objeto:              field(rec, idx, "objeto"),
		Contratista:         field(rec, idx, "contratista"),
		ValorInicial:        valor,
		FechaInicio:         field(rec, idx, "fecha_inicio"),
		FechaTerminacion:    field(rec, idx, "fecha_terminacion"),
		UsuarioCedula:       field(rec, idx, "usuario_cedula"),
	}, nil
}

// ParseValor interpreta valores en formato es-CO: "300000000", "300.000.000",
// "$ 150.000" y "300.000.000,50". Sin coma, los puntos son separadores de miles
// cuando cada grupo tras ellos tiene tres dígitos ("150.000"); si no, el punto es
// decimal ("300000000.50").
func ParseValor(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor_inicial vacío")
	}
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case gruposDeMiles(s):
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor_inicial %q no es numérico", s)
	}
	return d, nil
}

// gruposDeMiles true si s tiene al menos un punto, el primer grupo es de 1 a 3
// dígitos sin cero a la izquierda y todos los demás son de exactamente tres.
func gruposDeMiles(s string) bool {
	grupos := strings.Split(strings.TrimPrefix(s, "-"), ".")
	if len(grupos) < 2 || grupos[0] == "" || len(grupos[0]) > 3 || grupos[0][0] == '0' {
		return false
	}
	for _, g := range grupos[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
