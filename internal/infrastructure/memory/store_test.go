package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-contratos/internal/domain"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
	"github.com/jhoicas/seguimiento-contratos/internal/domain/repository"
	"github.com/jhoicas/seguimiento-contratos/internal/infrastructure/memory"
)

func nuevoContrato(t *testing.T, s *memory.Store, numero, cedula string) *entity.Contrato {
	t.Helper()
	c := &entity.Contrato{
		NumeroContrato: numero,
		ValorInicial:   decimal.NewFromInt(1000),
		ValorTotal:     decimal.NewFromInt(1000),
		UsuarioCedula:  cedula,
	}
	require.NoError(t, memory.NewContratoRepository(s).Create(context.Background(), c))
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un error dentro del callback descarta contrato y adición.
func TestRun_RollbackDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := nuevoContrato(t, s, "C-1", "1")
	boom := errors.New("fallo al anexar")

	err := s.Run(ctx, func(cr repository.ContratoRepository, ar repository.AdicionRepository, _ repository.ModificacionRepository) error {
		locked, err := cr.GetForUpdate(ctx, c.ID)
		require.NoError(t, err)
		locked.ValorTotal = locked.ValorTotal.Add(decimal.NewFromInt(500))
		require.NoError(t, cr.UpdateEnvelope(ctx, locked))
		require.NoError(t, ar.Append(ctx, &entity.Adicion{ContratoID: c.ID, ValorAdicion: decimal.NewFromInt(500)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := memory.NewContratoRepository(s).GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.ValorTotal.Equal(decimal.NewFromInt(1000)), "el valor no debe cambiar tras rollback")

	adiciones, err := memory.NewAdicionRepository(s).ListByContrato(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, adiciones)
}

// Caso 2: dentro de la tx se ven las escrituras pendientes; fuera, solo tras Commit.
func TestRun_LecturasDentroDeLaTx(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := nuevoContrato(t, s, "C-2", "1")

	err := s.Run(ctx, func(cr repository.ContratoRepository, ar repository.AdicionRepository, _ repository.ModificacionRepository) error {
		require.NoError(t, ar.Append(ctx, &entity.Adicion{ContratoID: c.ID, ValorAdicion: decimal.NewFromInt(1)}))
		dentro, _ := ar.ListByContrato(ctx, c.ID)
		assert.Len(t, dentro, 1)
		fuera, _ := memory.NewAdicionRepository(s).ListByContrato(ctx, c.ID)
		assert.Empty(t, fuera)
		return nil
	})
	require.NoError(t, err)

	list, _ := memory.NewAdicionRepository(s).ListByContrato(ctx, c.ID)
	assert.Len(t, list, 1)
}

// Caso 3: incrementos concurrentes sobre el mismo contrato no se pierden.
func TestRun_GetForUpdateSerializa(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := nuevoContrato(t, s, "C-3", "1")

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Run(ctx, func(cr repository.ContratoRepository, _ repository.AdicionRepository, _ repository.ModificacionRepository) error {
				locked, err := cr.GetForUpdate(ctx, c.ID)
				if err != nil {
					return err
				}
				locked.ValorTotal = locked.ValorTotal.Add(decimal.NewFromInt(10))
				return cr.UpdateEnvelope(ctx, locked)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, _ := memory.NewContratoRepository(s).GetByID(ctx, c.ID)
	assert.True(t, got.ValorTotal.Equal(decimal.NewFromInt(1000+10*n)), "valor %s", got.ValorTotal)
}

// Caso 4: el candado respeta la cancelación del contexto.
func TestRun_GetForUpdateCancelado(t *testing.T) {
	s := memory.NewStore()
	c := nuevoContrato(t, s, "C-4", "1")
	bloqueado := make(chan struct{})
	liberar := make(chan struct{})

	go func() {
		_ = s.Run(context.Background(), func(cr repository.ContratoRepository, _ repository.AdicionRepository, _ repository.ModificacionRepository) error {
			_, err := cr.GetForUpdate(context.Background(), c.ID)
			close(bloqueado)
			<-liberar
			return err
		})
	}()
	<-bloqueado
	defer close(liberar)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Run(ctx, func(cr repository.ContratoRepository, _ repository.AdicionRepository, _ repository.ModificacionRepository) error {
		_, err := cr.GetForUpdate(ctx, c.ID)
		return err
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// Caso 5: contrato inexistente devuelve (nil, nil) sin tomar candado.
func TestGetForUpdate_Inexistente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	err := s.Run(ctx, func(cr repository.ContratoRepository, _ repository.AdicionRepository, _ repository.ModificacionRepository) error {
		c, err := cr.GetForUpdate(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, c)
		return nil
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libros y catálogos
// ──────────────────────────────────────────────────────────────────────────────

func TestSeguimientoGeneral_OrdenConEmpateDeReloj(t *testing.T) {
	ctx := context.Background()
	fijo := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := memory.NewStore().WithClock(func() time.Time { return fijo })
	c := nuevoContrato(t, s, "C-5", "1")
	repo := memory.NewSeguimientoGeneralRepository(s)

	for _, obs := range []string{"primero", "segundo", "tercero"} {
		require.NoError(t, repo.Append(ctx, &entity.SeguimientoGeneral{ContratoID: c.ID, Observaciones: obs}))
	}
	list, err := repo.ListByContrato(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "primero", list[0].Observaciones)
	assert.Equal(t, "tercero", list[2].Observaciones)
	assert.Less(t, list[0].Secuencia, list[1].Secuencia)
	assert.Equal(t, fijo, list[1].CreatedAt)
}

func TestAppend_IgnoraCamposDelCliente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	cliente := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	sa := &entity.SeguimientoActividad{ID: "mio", ActividadID: 1, CreatedAt: cliente}

	require.NoError(t, memory.NewSeguimientoActividadRepository(s).Append(ctx, sa))
	assert.NotEqual(t, "mio", sa.ID)
	assert.NotEqual(t, cliente, sa.CreatedAt)
	assert.Positive(t, sa.Secuencia)
}

func TestContratoRepo_NumeroDuplicado(t *testing.T) {
	s := memory.NewStore()
	nuevoContrato(t, s, "C-6", "1")
	err := memory.NewContratoRepository(s).Create(context.Background(), &entity.Contrato{NumeroContrato: "C-6"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestContratoRepo_ListFiltraYPagina(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	nuevoContrato(t, s, "A", "111")
	nuevoContrato(t, s, "B", "222")
	nuevoContrato(t, s, "C", "111")
	repo := memory.NewContratoRepository(s)

	propios, err := repo.List(ctx, "111", 20, 0)
	require.NoError(t, err)
	require.Len(t, propios, 2)
	assert.Equal(t, "A", propios[0].NumeroContrato)

	todos, _ := repo.List(ctx, "", 2, 1)
	require.Len(t, todos, 2)
	assert.Equal(t, "B", todos[0].NumeroContrato)

	vacio, _ := repo.List(ctx, "", 10, 10)
	assert.Empty(t, vacio)
}

func TestObra_CantidadActividadesYContratoResuelto(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	c := nuevoContrato(t, s, "C-7", "1")
	cuos := memory.NewCuoRepository(s)
	actividades := memory.NewActividadRepository(s)

	cuo := &entity.Cuo{ContratoID: c.ID, Numero: "CUO-1"}
	require.NoError(t, cuos.Create(ctx, cuo))
	for _, nombre := range []string{"Andenes", "Sardineles"} {
		require.NoError(t, actividades.Create(ctx, &entity.Actividad{CuoID: cuo.ID, Nombre: nombre}))
	}

	got, err := cuos.GetByID(ctx, cuo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CantidadActividades)

	a, err := actividades.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, c.ID, a.ContratoID)

	assert.ErrorIs(t, actividades.Create(ctx, &entity.Actividad{CuoID: 99}), domain.ErrNotFound)
}

func TestUsuarioRepo_EmailSinMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUsuarioRepository(memory.NewStore())
	require.NoError(t, repo.Create(ctx, &entity.Usuario{Cedula: "1", Email: "Ana@Ciudad.gov.co"}))

	u, err := repo.GetByEmail(ctx, "ana@ciudad.gov.co")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1", u.Cedula)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Usuario{Cedula: "2", Email: "ana@ciudad.gov.co"}), domain.ErrDuplicate)
}
