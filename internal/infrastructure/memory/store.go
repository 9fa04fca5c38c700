// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory y como doble de pruebas.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var (
	_ repository.ShiftRepository      = (*ShiftRepo)(nil)
	_ repository.WorkerRepository     = (*WorkerRepo)(nil)
	_ repository.RestaurantRepository = (*RestaurantRepo)(nil)
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	txMu sync.Mutex // serializa unidades de RunShifts
	mu   sync.RWMutex

	restaurants map[string]*entity.Restaurant
	workers     map[string]*entity.Worker
	shifts      map[string]*entity.Shift
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		restaurants: make(map[string]*entity.Restaurant),
		workers:     make(map[string]*entity.Worker),
		shifts:      make(map[string]*entity.Shift),
	}
}

// Shifts devuelve el repositorio de turnos fuera de transacción.
func (st *Store) Shifts() *ShiftRepo { return &ShiftRepo{st: st} }

// Workers devuelve el repositorio de trabajadores.
func (st *Store) Workers() *WorkerRepo { return &WorkerRepo{st: st} }

// Restaurants devuelve el repositorio de restaurantes.
func (st *Store) Restaurants() *RestaurantRepo { return &RestaurantRepo{st: st} }

// Timesheets devuelve el repositorio de agregados de horas.
func (st *Store) Timesheets() *TimesheetRepo { return &TimesheetRepo{st: st} }

// RunShifts ejecuta fn como unidad atómica: las escrituras se acumulan y se aplican solo si fn no falla.
func (st *Store) RunShifts(ctx context.Context, fn func(shifts repository.ShiftRepository) error) error {
	st.txMu.Lock()
	defer st.txMu.Unlock()

	tx := &ShiftRepo{st: st, pending: make(map[string]*entity.Shift), deleted: make(map[string]bool)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for id := range tx.deleted {
		delete(st.shifts, id)
	}
	for id, s := range tx.pending {
		st.shifts[id] = s
	}
	return nil
}

// ShiftRepo repositorio de turnos. Con pending != nil actúa dentro de RunShifts.
type ShiftRepo struct {
	st      *Store
	pending map[string]*entity.Shift
	deleted map[string]bool
}

func (r *ShiftRepo) inTx() bool { return r.pending != nil }

// Save inserta o reemplaza por ID; asigna uno nuevo si viene vacío.
func (r *ShiftRepo) Save(_ context.Context, s *entity.Shift) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.workers[s.WorkerID]; !ok {
		return domain.ErrConflict
	}
	if _, ok := r.st.restaurants[s.RestaurantID]; !ok {
		return domain.ErrConflict
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	stored := s.Clone()
	stored.Worker, stored.Restaurant = nil, nil
	if r.inTx() {
		delete(r.deleted, s.ID)
		r.pending[s.ID] = stored
		return nil
	}
	r.st.shifts[s.ID] = stored
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ShiftRepo) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	s, ok := r.lookup(id)
	if !ok {
		return nil, nil
	}
	return r.st.hydrate(s), nil
}

// GetForUpdate equivale a GetByID; el bloqueo lo da RunShifts.
func (r *ShiftRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *ShiftRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Shift, error) {
	return r.filter(func(s *entity.Shift) bool { return s.RestaurantID == restaurantID }), nil
}

func (r *ShiftRepo) ListByWorker(_ context.Context, workerID string) ([]*entity.Shift, error) {
	return r.filter(func(s *entity.Shift) bool { return s.WorkerID == workerID }), nil
}

func (r *ShiftRepo) ListByWorkerAndRange(_ context.Context, workerID string, start, end time.Time) ([]*entity.Shift, error) {
	return r.filter(func(s *entity.Shift) bool { return s.WorkerID == workerID && s.Within(start, end) }), nil
}

func (r *ShiftRepo) ListByRestaurantAndRange(_ context.Context, restaurantID string, start, end time.Time) ([]*entity.Shift, error) {
	return r.filter(func(s *entity.Shift) bool { return s.RestaurantID == restaurantID && s.Within(start, end) }), nil
}

// Delete elimina el turno; no falla si no existe.
func (r *ShiftRepo) Delete(_ context.Context, id string) error {
	if r.inTx() {
		delete(r.pending, id)
		r.deleted[id] = true
		return nil
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.shifts, id)
	return nil
}

func (r *ShiftRepo) lookup(id string) (*entity.Shift, bool) {
	if r.inTx() {
		if r.deleted[id] {
			return nil, false
		}
		if s, ok := r.pending[id]; ok {
			return s, true
		}
	}
	s, ok := r.st.shifts[id]
	return s, ok
}

// filter recorre la vista visible (almacén más cambios pendientes) ordenada por start_time, id.
func (r *ShiftRepo) filter(keep func(*entity.Shift) bool) []*entity.Shift {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := []*entity.Shift{}
	seen := make(map[string]bool)
	visit := func(s *entity.Shift) {
		if seen[s.ID] || (r.inTx() && r.deleted[s.ID]) {
			return
		}
		seen[s.ID] = true
		if keep(s) {
			out = append(out, r.st.hydrate(s))
		}
	}
	for _, s := range r.pending {
		visit(s)
	}
	for _, s := range r.st.shifts {
		visit(s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// hydrate devuelve una copia con trabajador y restaurante adjuntos. Requiere mu tomado.
func (st *Store) hydrate(s *entity.Shift) *entity.Shift {
	c := s.Clone()
	if w, ok := st.workers[s.WorkerID]; ok {
		c.Worker = st.hydrateWorker(w)
	}
	if rest, ok := st.restaurants[s.RestaurantID]; ok {
		rc := *rest
		c.Restaurant = &rc
	}
	return c
}

func (st *Store) hydrateWorker(w *entity.Worker) *entity.Worker {
	c := *w
	if rest, ok := st.restaurants[w.RestaurantID]; ok {
		rc := *rest
		c.Restaurant = &rc
	}
	return &c
}

// WorkerRepo repositorio de trabajadores en memoria. El email es único sin distinguir mayúsculas.
type WorkerRepo struct{ st *Store }

func (r *WorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.emailTaken(w.Email, "") {
		return domain.ErrEmailAlreadyExists
	}
	if _, ok := r.st.restaurants[w.RestaurantID]; !ok {
		return domain.ErrConflict
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	c := *w
	c.Restaurant = nil
	r.st.workers[w.ID] = &c
	return nil
}

func (r *WorkerRepo) GetByID(_ context.Context, id string) (*entity.Worker, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	w, ok := r.st.workers[id]
	if !ok {
		return nil, nil
	}
	return r.st.hydrateWorker(w), nil
}

func (r *WorkerRepo) GetByEmail(_ context.Context, email string) (*entity.Worker, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, w := range r.st.workers {
		if strings.EqualFold(w.Email, email) {
			return r.st.hydrateWorker(w), nil
		}
	}
	return nil, nil
}

func (r *WorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.workers[w.ID]; !ok {
		return domain.ErrWorkerNotFound
	}
	if r.emailTaken(w.Email, w.ID) {
		return domain.ErrEmailAlreadyExists
	}
	if _, ok := r.st.restaurants[w.RestaurantID]; !ok {
		return domain.ErrConflict
	}
	c := *w
	c.Restaurant = nil
	r.st.workers[w.ID] = &c
	return nil
}

func (r *WorkerRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Worker, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	out := []*entity.Worker{}
	for _, w := range r.st.workers {
		if w.RestaurantID == restaurantID {
			out = append(out, r.st.hydrateWorker(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete falla con ErrConflict si algún turno referencia al trabajador.
func (r *WorkerRepo) Delete(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.shifts {
		if s.WorkerID == id {
			return domain.ErrConflict
		}
	}
	delete(r.st.workers, id)
	return nil
}

func (r *WorkerRepo) emailTaken(email, exceptID string) bool {
	for _, w := range r.st.workers {
		if w.ID != exceptID && strings.EqualFold(w.Email, email) {
			return true
		}
	}
	return false
}

// RestaurantRepo repositorio de restaurantes en memoria.
type RestaurantRepo struct{ st *Store }

func (r *RestaurantRepo) Create(_ context.Context, rest *entity.Restaurant) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}
	c := *rest
	r.st.restaurants[rest.ID] = &c
	return nil
}

func (r *RestaurantRepo) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	rest, ok := r.st.restaurants[id]
	if !ok {
		return nil, nil
	}
	c := *rest
	return &c, nil
}

func (r *RestaurantRepo) List(_ context.Context) ([]*entity.Restaurant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	out := make([]*entity.Restaurant, 0, len(r.st.restaurants))
	for _, rest := range r.st.restaurants {
		c := *rest
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
