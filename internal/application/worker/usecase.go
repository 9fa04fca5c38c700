package worker

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase gestión de trabajadores y login.
type UseCase struct {
	workers     repository.WorkerRepository
	restaurants repository.RestaurantRepository
	jwtCfg      JWTConfig
	clock       localtime.Clock
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de trabajadores.
func NewUseCase(workers repository.WorkerRepository, restaurants repository.RestaurantRepository, jwtCfg JWTConfig, clock localtime.Clock, log *logger.Logger) *UseCase {
	if clock == nil {
		clock = localtime.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{workers: workers, restaurants: restaurants, jwtCfg: jwtCfg, clock: clock, log: log.Component("worker")}
}

// Create registra un trabajador: el restaurante debe existir y el password se hashea con bcrypt.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	restaurant, err := uc.findRestaurant(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.workers.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := uc.clock.Now()
	w := &entity.Worker{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        in.Phone,
		Role:         in.Role,
		PasswordHash: string(hash),
		RestaurantID: restaurant.ID,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.workers.Create(ctx, w); err != nil {
		return nil, err
	}
	w.Restaurant = restaurant
	uc.log.Info().Str("worker_id", w.ID).Str("restaurant_id", w.RestaurantID).Msg("trabajador creado")
	resp := dto.NewWorkerResponse(w)
	return &resp, nil
}

// Update aplica una actualización parcial; re-hashea el password y re-resuelve el restaurante si vienen.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	w, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rid, ok := in.RestaurantID.Get(); ok {
		restaurant, err := uc.findRestaurant(ctx, rid)
		if err != nil {
			return nil, err
		}
		w.RestaurantID, w.Restaurant = restaurant.ID, restaurant
	}
	if pw, ok := in.Password.Get(); ok {
		if len(pw) < 8 {
			return nil, fmt.Errorf("%w: password demasiado corto", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		w.PasswordHash = string(hash)
	}
	in.Name.Apply(&w.Name)
	in.Email.Apply(&w.Email)
	in.Phone.Apply(&w.Phone)
	in.Role.Apply(&w.Role)
	in.Active.Apply(&w.Active)
	w.UpdatedAt = uc.clock.Now()

	if err := uc.workers.Update(ctx, w); err != nil {
		return nil, err
	}
	resp := dto.NewWorkerResponse(w)
	return &resp, nil
}

// GetByID devuelve el trabajador o ErrWorkerNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.WorkerResponse, error) {
	w, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewWorkerResponse(w)
	return &resp, nil
}

// ListByRestaurant lista los trabajadores del restaurante; vacío si no hay.
func (uc *UseCase) ListByRestaurant(ctx context.Context, restaurantID string) ([]dto.WorkerResponse, error) {
	list, err := uc.workers.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.NewWorkerResponse(w))
	}
	return out, nil
}

// Delete elimina el trabajador. Falla con ErrConflict si todavía tiene turnos.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.workers.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("worker_id", id).Msg("trabajador eliminado")
	return nil
}

// ToggleActive invierte el flag active.
func (uc *UseCase) ToggleActive(ctx context.Context, id string) (*dto.WorkerResponse, error) {
	w, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Active = !w.Active
	w.UpdatedAt = uc.clock.Now()
	if err := uc.workers.Update(ctx, w); err != nil {
		return nil, err
	}
	uc.log.Info().Str("worker_id", id).Bool("active", w.Active).Msg("estado de trabajador cambiado")
	resp := dto.NewWorkerResponse(w)
	return &resp, nil
}

// Login verifica email/password y genera un JWT con rol worker.
// Email desconocido y password incorrecto responden ErrUnauthorized; inactivo, ErrForbidden.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.WorkerAuthResponse, error) {
	w, err := uc.workers.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, domain.ErrWorkerNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !w.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, w.ID, w.RestaurantID, jwt.RoleWorker, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.WorkerAuthResponse{
		Message:        "Login exitoso",
		WorkerID:       w.ID,
		Name:           w.Name,
		Role:           w.Role,
		RestaurantID:   w.RestaurantID,
		RestaurantName: w.RestaurantName(),
		Token:          token,
	}, nil
}

func (uc *UseCase) find(ctx context.Context, id string) (*entity.Worker, error) {
	w, err := uc.workers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkerNotFound, id)
	}
	return w, nil
}

func (uc *UseCase) findRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	r, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	}
	return r, nil
}
