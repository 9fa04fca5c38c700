package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

// UseCase directorio de restaurantes.
type UseCase struct {
	repo  repository.RestaurantRepository
	clock localtime.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.RestaurantRepository, clock localtime.Clock) *UseCase {
	if clock == nil {
		clock = localtime.SystemClock{}
	}
	return &UseCase{repo: repo, clock: clock}
}

// Create registra un restaurante.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre obligatorio", domain.ErrInvalidInput)
	}
	r := &entity.Restaurant{Name: name, CreatedAt: uc.clock.Now()}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := dto.NewRestaurantResponse(r)
	return &resp, nil
}

// GetByID devuelve el restaurante o ErrRestaurantNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	}
	resp := dto.NewRestaurantResponse(r)
	return &resp, nil
}

// List devuelve todos los restaurantes ordenados por nombre.
func (uc *UseCase) List(ctx context.Context) ([]dto.RestaurantResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.NewRestaurantResponse(r))
	}
	return out, nil
}
