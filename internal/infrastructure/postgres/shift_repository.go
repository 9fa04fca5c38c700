package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// selectShift une trabajador y restaurantes para hidratar la respuesta en una sola consulta.
const selectShift = `
	SELECT s.id, s.start_time, s.end_time, s.worker_id, s.restaurant_id,
	       s.notes, s.shift_type, s.priority, s.location, s.status,
	       s.checked_in_time, s.checked_out_time, s.created_at, s.updated_at,
	       w.name, w.email, w.phone, w.role, w.active, w.restaurant_id, wr.name,
	       r.name
	FROM shifts s
	JOIN workers w ON w.id = s.worker_id
	JOIN restaurants wr ON wr.id = w.restaurant_id
	JOIN restaurants r ON r.id = s.restaurant_id`

// Save inserta o reemplaza por ID; asigna uno nuevo si viene vacío.
func (r *ShiftRepo) Save(ctx context.Context, s *entity.Shift) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO shifts (id, start_time, end_time, worker_id, restaurant_id, notes, shift_type, priority,
		                    location, status, checked_in_time, checked_out_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			worker_id = EXCLUDED.worker_id,
			restaurant_id = EXCLUDED.restaurant_id,
			notes = EXCLUDED.notes,
			shift_type = EXCLUDED.shift_type,
			priority = EXCLUDED.priority,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			checked_in_time = EXCLUDED.checked_in_time,
			checked_out_time = EXCLUDED.checked_out_time,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.StartTime, s.EndTime, s.WorkerID, s.RestaurantID,
		nullIfEmpty(s.Notes), nullIfEmpty(s.ShiftType), nullIfEmpty(s.Priority), nullIfEmpty(s.Location),
		string(s.Status), s.CheckedInTime, s.CheckedOutTime, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: trabajador o restaurante inexistente", domain.ErrConflict)
		}
		return fmt.Errorf("save shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID. Devuelve (nil, nil) si no existe.
func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, selectShift+` WHERE s.id = $1`, id)
}

// GetForUpdate bloquea la fila del turno hasta el fin de la transacción.
func (r *ShiftRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, selectShift+` WHERE s.id = $1 FOR UPDATE OF s`, id)
}

func (r *ShiftRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Shift, error) {
	return r.list(ctx, selectShift+` WHERE s.restaurant_id = $1 ORDER BY s.start_time, s.id`, restaurantID)
}

func (r *ShiftRepo) ListByWorker(ctx context.Context, workerID string) ([]*entity.Shift, error) {
	return r.list(ctx, selectShift+` WHERE s.worker_id = $1 ORDER BY s.start_time, s.id`, workerID)
}

// ListByWorkerAndRange filtra por contención en la ventana, no por solapamiento.
func (r *ShiftRepo) ListByWorkerAndRange(ctx context.Context, workerID string, start, end time.Time) ([]*entity.Shift, error) {
	return r.list(ctx, selectShift+`
		WHERE s.worker_id = $1 AND s.start_time >= $2 AND s.end_time <= $3
		ORDER BY s.start_time, s.id`, workerID, start, end)
}

// ListByRestaurantAndRange filtra por contención en la ventana, no por solapamiento.
func (r *ShiftRepo) ListByRestaurantAndRange(ctx context.Context, restaurantID string, start, end time.Time) ([]*entity.Shift, error) {
	return r.list(ctx, selectShift+`
		WHERE s.restaurant_id = $1 AND s.start_time >= $2 AND s.end_time <= $3
		ORDER BY s.start_time, s.id`, restaurantID, start, end)
}

// Delete elimina el turno.
func (r *ShiftRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func (r *ShiftRepo) getOne(ctx context.Context, query string, id string) (*entity.Shift, error) {
	s, err := scanShift(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	out := []*entity.Shift{}
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var (
		s                                    entity.Shift
		w                                    entity.Worker
		notes, shiftType, priority, location *string
		phone                                *string
		status, workerRestaurant, restaurant string
	)
	err := row.Scan(
		&s.ID, &s.StartTime, &s.EndTime, &s.WorkerID, &s.RestaurantID,
		&notes, &shiftType, &priority, &location, &status,
		&s.CheckedInTime, &s.CheckedOutTime, &s.CreatedAt, &s.UpdatedAt,
		&w.Name, &w.Email, &phone, &w.Role, &w.Active, &w.RestaurantID, &workerRestaurant,
		&restaurant,
	)
	if err != nil {
		return nil, err
	}
	s.Notes, s.ShiftType, s.Priority, s.Location = deref(notes), deref(shiftType), deref(priority), deref(location)
	s.Status = entity.ShiftStatus(status)

	w.ID = s.WorkerID
	w.Phone = deref(phone)
	w.Restaurant = &entity.Restaurant{ID: w.RestaurantID, Name: workerRestaurant}
	s.Worker = &w
	s.Restaurant = &entity.Restaurant{ID: s.RestaurantID, Name: restaurant}
	return &s, nil
}
