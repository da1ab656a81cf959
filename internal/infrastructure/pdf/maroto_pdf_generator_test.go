package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/pdf"
)

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func informe() *seguimiento.ContratoReportData {
	c := &entity.Contrato{
		ID:                      7,
		NumeroContrato:          "SA-100-2024",
		Objeto:                  "Mantenimiento de vías terciarias",
		Contratista:             "Consorcio Vías del Norte",
		ValorInicial:            decimal.NewFromInt(300_000_000),
		ValorTotal:              decimal.NewFromInt(328_000_000),
		FechaInicio:             fecha("2024-01-01"),
		FechaTerminacionInicial: fecha("2024-03-14"),
		FechaTerminacionActual:  fecha("2024-04-15"),
		UsuarioCedula:           "2000",
	}
	seg := &entity.SeguimientoGeneral{
		ContratoID:       7,
		AvanceFinanciero: decimal.NewFromInt(150_000_000),
		AvanceFisico:     decimal.NewFromInt(42),
		CreatedAt:        fecha("2024-02-01"),
		Secuencia:        3,
	}
	add := &entity.Adicion{ContratoID: 7, ValorAdicion: decimal.NewFromInt(28_000_000), Fecha: fecha("2024-01-20"), CreatedAt: fecha("2024-01-20"), Secuencia: 1}
	mod := &entity.Modificacion{
		ContratoID: 7, Tipo: entity.TipoProrroga, Duracion: 32,
		FechaInicio: fecha("2024-03-15"), FechaFinal: fecha("2024-04-15"),
		CreatedAt: fecha("2024-01-25"), Secuencia: 2,
	}
	act := entity.Actividad{ID: 1, CuoID: 1, ContratoID: 7, Nombre: "Pavimento", MetaFisica: decimal.NewFromInt(1000), ProyectadoFinanciero: decimal.NewFromInt(100_000_000), UnidadesAvance: "m2"}
	return &seguimiento.ContratoReportData{
		Contrato:  c,
		Progreso:  progress.EstadoContrato(*c, []*entity.SeguimientoGeneral{seg}, progress.DefaultUmbrales()),
		Historial: progress.Historial([]*entity.Adicion{add}, []*entity.Modificacion{mod}, []*entity.SeguimientoGeneral{seg}),
		Cuos: []seguimiento.CuoReport{{
			Cuo: &entity.Cuo{ID: 1, ContratoID: 7, Numero: "CUO-01", Comuna: "Comuna 2", Barrio: "Centro", CantidadActividades: 1},
			Actividades: []progress.ActividadProgress{
				progress.EstadoActividad(act, []*entity.SeguimientoActividad{
					{ActividadID: 1, AvanceFisico: decimal.NewFromInt(420), CostoAproximado: decimal.NewFromInt(55_000_000), CreatedAt: fecha("2024-02-02")},
				}),
			},
		}},
		GeneradoEn:  fecha("2024-02-10"),
		GeneradoPor: "1000",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateContratoPDF
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: informe completo produce un documento PDF.
func TestGenerateContratoPDF_InformeCompleto(t *testing.T) {
	b, err := pdf.NewMarotoPDFGenerator().GenerateContratoPDF(context.Background(), informe())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "el resultado debe ser un PDF")
}

// Caso 2: contrato sin frentes ni historial también se renderiza.
func TestGenerateContratoPDF_SinHistorial(t *testing.T) {
	data := informe()
	data.Cuos = nil
	data.Historial = nil
	data.Progreso = progress.EstadoContrato(*data.Contrato, nil, progress.DefaultUmbrales())

	b, err := pdf.NewMarotoPDFGenerator().GenerateContratoPDF(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

// Caso 3: datos vacíos → error.
func TestGenerateContratoPDF_DatosVacios(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateContratoPDF(context.Background(), &seguimiento.ContratoReportData{})
	assert.Error(t, err)
}
