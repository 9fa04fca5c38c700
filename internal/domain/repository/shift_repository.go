package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para Shift (DIP).
// Las lecturas devuelven (nil, nil) cuando el turno no existe y hidratan Worker y Restaurant.
type ShiftRepository interface {
	// Save inserta o reemplaza por ID; asigna un ID nuevo si viene vacío.
	Save(ctx context.Context, s *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	// GetForUpdate lee el turno bloqueándolo hasta el fin de la unidad transaccional.
	GetForUpdate(ctx context.Context, id string) (*entity.Shift, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Shift, error)
	ListByWorker(ctx context.Context, workerID string) ([]*entity.Shift, error)
	// Los rangos filtran por contención: start_time >= start AND end_time <= end.
	ListByWorkerAndRange(ctx context.Context, workerID string, start, end time.Time) ([]*entity.Shift, error)
	ListByRestaurantAndRange(ctx context.Context, restaurantID string, start, end time.Time) ([]*entity.Shift, error)
	Delete(ctx context.Context, id string) error
}
