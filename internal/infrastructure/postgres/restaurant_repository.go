package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

// Create persiste un restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, rest *entity.Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO restaurants (id, name, created_at) VALUES ($1, $2, $3)`,
		rest.ID, rest.Name, rest.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID. Devuelve (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM restaurants WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// List devuelve los restaurantes ordenados por nombre.
func (r *RestaurantRepo) List(ctx context.Context) ([]*entity.Restaurant, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM restaurants ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	out := []*entity.Restaurant{}
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, &rest)
	}
	return out, rows.Err()
}
