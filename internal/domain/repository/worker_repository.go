package repository

import (
	"context"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker (DIP).
type WorkerRepository interface {
	Create(ctx context.Context, w *entity.Worker) error
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	GetByEmail(ctx context.Context, email string) (*entity.Worker, error)
	Update(ctx context.Context, w *entity.Worker) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Worker, error)
	Delete(ctx context.Context, id string) error
}
