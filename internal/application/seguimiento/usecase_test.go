package seguimiento_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/application/dto"
	"github.com/jhoicas/seguimiento-contratos/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/access"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/progress"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	admin      = access.Principal{Cedula: "1000", Rol: entity.RolAdmin}
	supervisor = access.Principal{Cedula: "2000", Rol: entity.RolSupervisor}
	ajeno      = access.Principal{Cedula: "3000", Rol: entity.RolSupervisor}
)

type fixture struct {
	store    *memory.Store
	repos    seguimiento.Repositories
	envelope *seguimiento.EnvelopeUseCase
	progress *seguimiento.ProgressUseCase
	registry *seguimiento.RegistryUseCase
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ndec(s string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(s)) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	for _, u := range []entity.Usuario{
		{Cedula: admin.Cedula, Email: "admin@alcaldia.gov.co", Rol: entity.RolAdmin, Estado: "activo"},
		{Cedula: supervisor.Cedula, Email: "sup@alcaldia.gov.co", Rol: entity.RolSupervisor, Estado: "activo"},
		{Cedula: ajeno.Cedula, Email: "otro@alcaldia.gov.co", Rol: entity.RolSupervisor, Estado: "activo"},
	} {
		require.NoError(t, repos.Usuarios.Create(context.Background(), &u))
	}
	pu := seguimiento.NewProgressUseCase(repos, progress.DefaultUmbrales())
	return &fixture{
		store:    store,
		repos:    repos,
		envelope: seguimiento.NewEnvelopeUseCase(store, repos.Contratos),
		progress: pu,
		registry: seguimiento.NewRegistryUseCase(repos),
	}
}

// contrato crea un contrato asignado a supervisor.
func (f *fixture) contrato(t *testing.T, numero, valor string) *dto.ContratoResponse {
	t.Helper()
	c, err := f.registry.CreateContrato(context.Background(), admin, dto.CreateContratoRequest{
		NumeroContrato:   numero,
		Objeto:           "Mantenimiento de vías",
		Contratista:      "Consorcio Vial",
		ValorInicial:     dec(valor),
		FechaInicio:      "2024-01-15",
		FechaTerminacion: "2024-03-01",
		UsuarioCedula:    supervisor.Cedula,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) actividad(t *testing.T, contratoID int64, meta, proyectado string) *dto.ActividadResponse {
	t.Helper()
	ctx := context.Background()
	cuo, err := f.registry.CreateCuo(ctx, supervisor, contratoID, dto.CreateCuoRequest{Numero: "CUO-01", Latitud: 2.44, Longitud: -76.6})
	require.NoError(t, err)
	a, err := f.registry.CreateActividad(ctx, supervisor, cuo.ID, dto.CreateActividadRequest{
		Nombre:               "Andenes",
		MetaFisica:           dec(meta),
		ProyectadoFinanciero: dec(proyectado),
		UnidadesAvance:       "metros cuadrados",
	})
	require.NoError(t, err)
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// Envolvente
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: adición suma al valor total y deja la línea base intacta.
func TestCreateAdicion_SumaAlValorTotal(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-001-2024", "1000000000")

	out, err := f.envelope.CreateAdicion(context.Background(), supervisor, c.ID, dto.CreateAdicionRequest{
		ValorAdicion: dec("150000000"), Fecha: "2024-05-01", Observaciones: "obras complementarias",
	})
	require.NoError(t, err)
	assert.True(t, out.Contrato.ValorTotal.Equal(dec("1150000000")))
	assert.True(t, out.Contrato.ValorInicial.Equal(dec("1000000000")))
	assert.NotEmpty(t, out.Adicion.ID)
	assert.Equal(t, supervisor.Cedula, out.Adicion.CreatedBy)
}

// Caso 2: adiciones concurrentes sobre el mismo contrato no pierden incrementos.
func TestCreateAdicion_ConcurrenciaSinPerdidas(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-002-2024", "1000")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.envelope.CreateAdicion(context.Background(), supervisor, c.ID, dto.CreateAdicionRequest{
				ValorAdicion: dec("10"), Fecha: "2024-05-01",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := f.registry.GetContrato(context.Background(), supervisor, c.ID)
	require.NoError(t, err)
	assert.True(t, got.ValorTotal.Equal(dec("1250")), "valor total %s", got.ValorTotal)

	adiciones, err := f.repos.Adiciones.ListByContrato(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, adiciones, n)
}

// Caso 3: una adición inválida no deja registro ni cambia la envolvente.
func TestCreateAdicion_InvalidaNoDejaEstadoParcial(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-003-2024", "1000")

	_, err := f.envelope.CreateAdicion(context.Background(), supervisor, c.ID, dto.CreateAdicionRequest{
		ValorAdicion: dec("0"), Fecha: "2024-05-01",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	got, _ := f.registry.GetContrato(context.Background(), supervisor, c.ID)
	assert.True(t, got.ValorTotal.Equal(dec("1000")))
	adiciones, _ := f.repos.Adiciones.ListByContrato(context.Background(), c.ID)
	assert.Empty(t, adiciones)
}

func TestCreateAdicion_FechaMalFormada(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-004-2024", "1000")
	_, err := f.envelope.CreateAdicion(context.Background(), supervisor, c.ID, dto.CreateAdicionRequest{
		ValorAdicion: dec("5"), Fecha: "01/05/2024",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Caso 4: prórroga con duración inclusiva y nueva fecha de terminación.
func TestCreateModificacion_Prorroga(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-005-2024", "1000")

	out, err := f.envelope.CreateModificacion(context.Background(), supervisor, c.ID, dto.CreateModificacionRequest{
		Tipo: entity.TipoProrroga, FechaInicio: "2024-03-15", FechaFinal: "2024-04-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 32, out.Modificacion.Duracion)
	assert.Equal(t, "2024-04-15", out.Contrato.FechaTerminacionActual)
	assert.Equal(t, "2024-03-01", out.Contrato.FechaTerminacionInicial)
}

func TestCreateModificacion_FechaFinalNoPosterior(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-006-2024", "1000")
	_, err := f.envelope.CreateModificacion(context.Background(), supervisor, c.ID, dto.CreateModificacionRequest{
		Tipo: entity.TipoSuspension, FechaInicio: "2024-03-15", FechaFinal: "2024-03-15",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	mods, _ := f.repos.Modificaciones.ListByContrato(context.Background(), c.ID)
	assert.Empty(t, mods)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: Forbidden y NotFound son distintos en todas las operaciones.
func TestGuard_ForbiddenVsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-007-2024", "1000")

	_, err := f.envelope.CreateAdicion(ctx, ajeno, c.ID, dto.CreateAdicionRequest{ValorAdicion: dec("1"), Fecha: "2024-05-01"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.progress.GetContratoProgress(ctx, ajeno, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.progress.CreateSeguimientoGeneral(ctx, ajeno, c.ID, dto.CreateSeguimientoGeneralRequest{AvanceFisico: ndec("1")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.progress.GetContratoProgress(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.envelope.CreateModificacion(ctx, admin, 999, dto.CreateModificacionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.progress.GetActividadProgress(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.progress.GetContratoProgress(ctx, admin, c.ID)
	assert.NoError(t, err, "ADMIN accede a cualquier contrato")
}

// Caso 6: un supervisor ajeno tampoco puede reportar sobre actividades del contrato.
func TestGuard_ActividadDeContratoAjeno(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-008-2024", "1000")
	a := f.actividad(t, c.ID, "100", "100")

	_, err := f.progress.CreateSeguimientoActividad(context.Background(), ajeno, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("1"), CostoAproximado: ndec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Avance
// ──────────────────────────────────────────────────────────────────────────────

func TestGetContratoProgress_SinReportes(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-009-2024", "328000000")

	out, err := f.progress.GetContratoProgress(context.Background(), supervisor, c.ID)
	require.NoError(t, err)
	assert.False(t, out.Reportado)
	assert.Equal(t, progress.EstadoAvanceSinReporte, out.EstadoAvance)
	assert.True(t, out.ValorEjecutado.IsZero())
	assert.Nil(t, out.UltimoReporte)
}

// Caso 7: el último reporte absoluto manda y se clasifica contra el valor total.
func TestCreateSeguimientoGeneral_UltimoReporteManda(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-010-2024", "328000000")

	_, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{
		AvanceFinanciero: ndec("100000000"), AvanceFisico: ndec("40"),
	})
	require.NoError(t, err)
	out, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{
		AvanceFinanciero: ndec("150000000"), AvanceFisico: ndec("42"), Observaciones: "corte de junio",
	})
	require.NoError(t, err)

	p := out.Progreso
	assert.True(t, p.ValorEjecutado.Equal(dec("150000000")))
	assert.Equal(t, "45.73", p.PorcentajeFinanciero.StringFixed(2))
	assert.Equal(t, "-3.73", p.DiferenciaAvance.StringFixed(2))
	assert.Equal(t, progress.EstadoAvanceNormal, p.EstadoAvance)
	assert.Equal(t, "corte de junio", p.Observaciones)
	assert.Equal(t, 2, p.CantidadReportes)
}

func TestCreateSeguimientoGeneral_FisicoFueraDeRango(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-011-2024", "1000")
	_, err := f.progress.CreateSeguimientoGeneral(context.Background(), supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{
		AvanceFinanciero: ndec("1"), AvanceFisico: ndec("101"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	h, _ := f.repos.SeguimientosGenerales.ListByContrato(context.Background(), c.ID)
	assert.Empty(t, h)
}

// Un reporte sin cifras no reemplaza al anterior con ceros.
func TestCreateSeguimientoGeneral_CamposRequeridos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-018-2024", "328000000")
	_, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{
		AvanceFinanciero: ndec("150000000"), AvanceFisico: ndec("42"),
	})
	require.NoError(t, err)

	for name, in := range map[string]dto.CreateSeguimientoGeneralRequest{
		"vacío":           {},
		"solo físico":     {AvanceFisico: ndec("50")},
		"solo financiero": {AvanceFinanciero: ndec("1")},
	} {
		_, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, in)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}

	h, err := f.repos.SeguimientosGenerales.ListByContrato(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, h, 1)
	out, err := f.progress.GetContratoProgress(ctx, supervisor, c.ID)
	require.NoError(t, err)
	assert.True(t, out.ValorEjecutado.Equal(dec("150000000")))
	assert.True(t, out.AvanceFisico.Equal(dec("42")))
}

// Caso 8: una adición cambia el porcentaje financiero sin reporte nuevo.
func TestGetContratoProgress_ReflejaAdicion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-012-2024", "1000")
	_, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{
		AvanceFinanciero: ndec("500"), AvanceFisico: ndec("40"),
	})
	require.NoError(t, err)

	antes, _ := f.progress.GetContratoProgress(ctx, supervisor, c.ID)
	assert.Equal(t, progress.EstadoAvanceRetrasoFisico, antes.EstadoAvance)

	_, err = f.envelope.CreateAdicion(ctx, supervisor, c.ID, dto.CreateAdicionRequest{ValorAdicion: dec("250"), Fecha: "2024-02-01"})
	require.NoError(t, err)

	despues, _ := f.progress.GetContratoProgress(ctx, supervisor, c.ID)
	assert.Equal(t, "40.00", despues.PorcentajeFinanciero.StringFixed(2))
	assert.Equal(t, progress.EstadoAvanceNormal, despues.EstadoAvance)
	assert.True(t, despues.ValorPorEjecutar.Equal(dec("750")))
}

// Caso 9: reportes de actividad incrementales.
func TestCreateSeguimientoActividad_Acumula(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-013-2024", "500000000")
	a := f.actividad(t, c.ID, "1000", "100000000")

	_, err := f.progress.CreateSeguimientoActividad(ctx, supervisor, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("300"), CostoAproximado: ndec("45000000"), DescripcionSeguimiento: "primer corte",
	})
	require.NoError(t, err)
	out, err := f.progress.CreateSeguimientoActividad(ctx, supervisor, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("120"), CostoAproximado: ndec("10000000"), DescripcionSeguimiento: "segundo corte",
	})
	require.NoError(t, err)

	p := out.Progreso
	assert.Equal(t, progress.ActividadReportada, p.Tipo)
	assert.True(t, p.AvanceAcumulado.Equal(dec("420")))
	assert.True(t, p.CostoAcumulado.Equal(dec("55000000")))
	require.NotNil(t, p.Reporte)
	assert.Equal(t, "segundo corte", p.Reporte.DescripcionSeguimiento)
	require.Len(t, p.Reporte.Historial, 2)
	assert.True(t, p.Reporte.Historial[0].AvanceAcumulado.Equal(dec("300")))
	assert.True(t, p.Reporte.Historial[1].AvanceAcumulado.Equal(dec("420")))
}

func TestCreateSeguimientoActividad_DeltaNegativo(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-014-2024", "1000")
	a := f.actividad(t, c.ID, "10", "10")
	_, err := f.progress.CreateSeguimientoActividad(context.Background(), supervisor, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("-1"), CostoAproximado: ndec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateSeguimientoActividad_CamposRequeridos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-019-2024", "1000")
	a := f.actividad(t, c.ID, "10", "10")

	_, err := f.progress.CreateSeguimientoActividad(ctx, supervisor, a.ID, dto.CreateSeguimientoActividadRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.progress.CreateSeguimientoActividad(ctx, supervisor, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("3"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	h, err := f.repos.SeguimientosActividad.ListByActividad(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestGetActividadProgress_SinReportes(t *testing.T) {
	f := newFixture(t)
	c := f.contrato(t, "SA-015-2024", "1000")
	a := f.actividad(t, c.ID, "250", "900")

	out, err := f.progress.GetActividadProgress(context.Background(), supervisor, a.ID)
	require.NoError(t, err)
	assert.Equal(t, progress.ActividadSinReporte, out.Tipo)
	assert.Nil(t, out.Reporte)
	assert.True(t, out.Actividad.MetaFisica.Equal(dec("250")))
	assert.Equal(t, "metros cuadrados", out.Actividad.UnidadesAvance)
	assert.True(t, out.AvanceAcumulado.IsZero())
}

func TestGetCuoProgress_IncluyeActividades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-016-2024", "1000")
	a := f.actividad(t, c.ID, "100", "100")
	_, err := f.progress.CreateSeguimientoActividad(ctx, supervisor, a.ID, dto.CreateSeguimientoActividadRequest{
		AvanceFisico: ndec("25"), CostoAproximado: ndec("10"),
	})
	require.NoError(t, err)

	out, err := f.progress.GetCuoProgress(ctx, supervisor, a.CuoID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Cuo.CantidadActividades)
	require.Len(t, out.Actividades, 1)
	assert.Equal(t, "25.00", out.Actividades[0].PorcentajeMeta.StringFixed(2))
}

// Caso 10: historial en orden total mezclando los tres libros.
func TestGetContratoHistory_Orden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contrato(t, "SA-017-2024", "1000")

	_, err := f.progress.CreateSeguimientoGeneral(ctx, supervisor, c.ID, dto.CreateSeguimientoGeneralRequest{AvanceFinanciero: ndec("1"), AvanceFisico: ndec("1")})
	require.NoError(t, err)
	_, err = f.envelope.CreateAdicion(ctx, supervisor, c.ID, dto.CreateAdicionRequest{ValorAdicion: dec("5"), Fecha: "2024-02-01"})
	require.NoError(t, err)
	_, err = f.envelope.CreateModificacion(ctx, supervisor, c.ID, dto.CreateModificacionRequest{
		Tipo: entity.TipoModificacion, FechaInicio: "2024-02-01", FechaFinal: "2024-02-10",
	})
	require.NoError(t, err)

	h, err := f.progress.GetContratoHistory(ctx, supervisor, c.ID)
	require.NoError(t, err)
	require.Len(t, h.Items, 3)
	assert.Equal(t, progress.EventoSeguimiento, h.Items[0].Tipo)
	assert.Equal(t, progress.EventoAdicion, h.Items[1].Tipo)
	assert.Equal(t, progress.EventoModificacion, h.Items[2].Tipo)
	assert.NotNil(t, h.Items[2].Modificacion)
	assert.Nil(t, h.Items[2].Adicion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateContrato_SoloAdmin(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.CreateContrato(context.Background(), supervisor, dto.CreateContratoRequest{NumeroContrato: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateContrato_Validaciones(t *testing.T) {
	f := newFixture(t)
	base := dto.CreateContratoRequest{
		NumeroContrato:   "SA-018-2024",
		ValorInicial:     dec("10"),
		FechaInicio:      "2024-01-01",
		FechaTerminacion: "2024-12-31",
		UsuarioCedula:    supervisor.Cedula,
	}
	cases := map[string]func(r *dto.CreateContratoRequest){
		"sin número":             func(r *dto.CreateContratoRequest) { r.NumeroContrato = " " },
		"valor negativo":         func(r *dto.CreateContratoRequest) { r.ValorInicial = dec("-1") },
		"terminación anterior":   func(r *dto.CreateContratoRequest) { r.FechaTerminacion = "2023-12-31" },
		"supervisor inexistente": func(r *dto.CreateContratoRequest) { r.UsuarioCedula = "999" },
	}
	for name, mutate := range cases {
		req := base
		mutate(&req)
		_, err := f.registry.CreateContrato(context.Background(), admin, req)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}

	_, err := f.registry.CreateContrato(context.Background(), admin, base)
	require.NoError(t, err)
	_, err = f.registry.CreateContrato(context.Background(), admin, base)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestListContratos_AlcancePorRol(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.contrato(t, "SA-019-2024", "1")
	f.contrato(t, "SA-020-2024", "1")

	propios, err := f.registry.ListContratos(ctx, supervisor, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, propios.Items, 2)
	assert.Equal(t, 20, propios.Page.Limit)

	ninguno, err := f.registry.ListContratos(ctx, ajeno, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, ninguno.Items)

	todos, err := f.registry.ListContratos(ctx, admin, dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, todos.Items, 1)
}
