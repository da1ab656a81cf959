// Package memory implementa los puertos de repositorio y el TxRunner en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory para desarrollo local y en los tests de casos de uso.
//
// Las transacciones acumulan escrituras y las aplican en Commit; un error en el callback
// las descarta. GetForUpdate toma un candado por contrato que se libera al terminar la tx,
// de modo que dos adiciones al mismo contrato se serializan y contratos distintos no se bloquean.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/seguimiento-contratos/internal/domain/entity"
)

// Store estado completo en memoria.
type Store struct {
	mu sync.RWMutex

	registroSeq    int64 // equivalente a registro_seq
	contratoSeq    int64
	cuoSeq         int64
	actividadSeq   int64
	usuarios       map[string]entity.Usuario
	contratos      map[int64]entity.Contrato
	cuos           map[int64]entity.Cuo
	actividades    map[int64]entity.Actividad
	adiciones      []entity.Adicion
	modificaciones []entity.Modificacion
	generales      []entity.SeguimientoGeneral
	porActividad   []entity.SeguimientoActividad

	locksMu sync.Mutex
	locks   map[int64]chan struct{}

	nowFn func() time.Time
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		usuarios:    map[string]entity.Usuario{},
		contratos:   map[int64]entity.Contrato{},
		cuos:        map[int64]entity.Cuo{},
		actividades: map[int64]entity.Actividad{},
		locks:       map[int64]chan struct{}{},
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj del store (created_at de los registros).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = now
	return s
}

// stamp asigna ID, CreatedAt y Secuencia como lo haría la base de datos.
func (s *Store) stamp() (string, time.Time, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registroSeq++
	return uuid.New().String(), s.nowFn(), s.registroSeq
}

// rowLock devuelve el candado del contrato, creándolo si no existe.
func (s *Store) rowLock(id int64) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[id] = l
	}
	return l
}

// lockContrato espera el candado del contrato o la cancelación del contexto.
func (s *Store) lockContrato(ctx context.Context, id int64) error {
	l := s.rowLock(id)
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlockContrato(id int64) {
	<-s.rowLock(id)
}

func antes(aT time.Time, aSeq int64, bT time.Time, bSeq int64) bool {
	if !aT.Equal(bT) {
		return aT.Before(bT)
	}
	return aSeq < bSeq
}

func sortAdiciones(list []*entity.Adicion) {
	sort.SliceStable(list, func(i, j int) bool {
		return antes(list[i].CreatedAt, list[i].Secuencia, list[j].CreatedAt, list[j].Secuencia)
	})
}

func sortModificaciones(list []*entity.Modificacion) {
	sort.SliceStable(list, func(i, j int) bool {
		return antes(list[i].CreatedAt, list[i].Secuencia, list[j].CreatedAt, list[j].Secuencia)
	})
}
