package shift

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// WorkerDirectory búsqueda de trabajadores; GetByID devuelve (nil, nil) si no existe.
type WorkerDirectory interface {
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Worker, error)
}

// RestaurantDirectory búsqueda de restaurantes; GetByID devuelve (nil, nil) si no existe.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
}

// TxRunner ejecuta una función dentro de una unidad atómica, pasando el repositorio de turnos atado a ella.
// Las precondiciones de estado se re-validan sobre el valor leído dentro de la unidad.
type TxRunner interface {
	RunShifts(ctx context.Context, fn func(shifts repository.ShiftRepository) error) error
}
