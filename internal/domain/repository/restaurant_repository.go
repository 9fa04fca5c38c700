package repository

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
type RestaurantRepository interface {
	Create(ctx context.Context, r *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	List(ctx context.Context) ([]*entity.Restaurant, error)
}
