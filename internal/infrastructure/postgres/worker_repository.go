package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

const selectWorker = `
	SELECT w.id, w.name, w.email, w.phone, w.role, w.password_hash, w.restaurant_id, w.active,
	       w.created_at, w.updated_at, r.name
	FROM workers w
	JOIN restaurants r ON r.id = w.restaurant_id`

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	query := `
		INSERT INTO workers (id, name, email, phone, role, password_hash, restaurant_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.Name, w.Email, nullIfEmpty(w.Phone), w.Role, w.PasswordHash, w.RestaurantID, w.Active,
		w.CreatedAt, w.UpdatedAt,
	)
	return mapWorkerWriteError("insert worker", err)
}

// GetByID obtiene un trabajador por ID. Devuelve (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	return r.getOne(ctx, selectWorker+` WHERE w.id = $1`, id)
}

// GetByEmail obtiene un trabajador por email sin distinguir mayúsculas.
func (r *WorkerRepo) GetByEmail(ctx context.Context, email string) (*entity.Worker, error) {
	return r.getOne(ctx, selectWorker+` WHERE lower(w.email) = lower($1)`, email)
}

// Update reemplaza los datos del trabajador.
func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	query := `
		UPDATE workers SET name = $2, email = $3, phone = $4, role = $5, password_hash = $6,
		       restaurant_id = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		w.ID, w.Name, w.Email, nullIfEmpty(w.Phone), w.Role, w.PasswordHash, w.RestaurantID, w.Active, w.UpdatedAt,
	)
	if err := mapWorkerWriteError("update worker", err); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

// ListByRestaurant lista los trabajadores del restaurante ordenados por nombre.
func (r *WorkerRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Worker, error) {
	rows, err := r.q.Query(ctx, selectWorker+` WHERE w.restaurant_id = $1 ORDER BY w.name, w.id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	out := []*entity.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Delete elimina el trabajador; si aún tiene turnos la FK lo impide (ErrConflict).
func (r *WorkerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el trabajador tiene turnos asignados", domain.ErrConflict)
		}
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

func (r *WorkerRepo) getOne(ctx context.Context, query, arg string) (*entity.Worker, error) {
	w, err := scanWorker(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return w, nil
}

func scanWorker(row pgx.Row) (*entity.Worker, error) {
	var (
		w              entity.Worker
		phone          *string
		restaurantName string
	)
	err := row.Scan(&w.ID, &w.Name, &w.Email, &phone, &w.Role, &w.PasswordHash, &w.RestaurantID, &w.Active,
		&w.CreatedAt, &w.UpdatedAt, &restaurantName)
	if err != nil {
		return nil, err
	}
	w.Phone = deref(phone)
	w.Restaurant = &entity.Restaurant{ID: w.RestaurantID, Name: restaurantName}
	return &w, nil
}

func mapWorkerWriteError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrEmailAlreadyExists
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: restaurante inexistente", domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
