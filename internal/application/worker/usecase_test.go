package worker_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
)

const secret = "test-secret"

func setup(t *testing.T) (*worker.UseCase, *memory.Store, *entity.Restaurant) {
	t.Helper()
	st := memory.NewStore()
	r := &entity.Restaurant{Name: "Centro"}
	require.NoError(t, st.Restaurants().Create(context.Background(), r))
	uc := worker.NewUseCase(st.Workers(), st.Restaurants(), worker.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}, nil, nil)
	return uc, st, r
}

func create(t *testing.T, uc *worker.UseCase, restaurantID string) *dto.WorkerResponse {
	t.Helper()
	w, err := uc.Create(context.Background(), dto.CreateWorkerRequest{
		Name: "Ana", Email: "ana@example.com", Password: "password123", Role: entity.JobRoleWaiter, RestaurantID: restaurantID,
	})
	require.NoError(t, err)
	return w
}

func TestCreate(t *testing.T) {
	uc, st, r := setup(t)
	w := create(t, uc, r.ID)

	assert.True(t, w.Active, "active ausente equivale a true")
	assert.Equal(t, "Centro", w.RestaurantName)

	stored, err := st.Workers().GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	_, err = uc.Create(context.Background(), dto.CreateWorkerRequest{Name: "Otra", Email: "ana@example.com", Password: "password123", Role: "Chef", RestaurantID: r.ID})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(context.Background(), dto.CreateWorkerRequest{Name: "X", Email: "x@example.com", Password: "password123", Role: "Chef", RestaurantID: "nope"})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestUpdate_Parcial(t *testing.T) {
	uc, _, r := setup(t)
	w := create(t, uc, r.ID)

	var req dto.UpdateWorkerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"555-1234","active":false}`), &req))
	got, err := uc.Update(context.Background(), w.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "555-1234", got.Phone)
	assert.False(t, got.Active)
	assert.Equal(t, "Ana", got.Name)

	_, err = uc.Update(context.Background(), "nope", req)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}

func TestToggleYLogin(t *testing.T) {
	uc, _, r := setup(t)
	ctx := context.Background()
	w := create(t, uc, r.ID)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, w.ID, resp.WorkerID)
	assert.Equal(t, "Centro", resp.RestaurantName)
	claims, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, w.ID, claims.SubjectID)
	assert.Equal(t, jwt.RoleWorker, claims.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)

	toggled, err := uc.ToggleActive(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete(t *testing.T) {
	uc, _, r := setup(t)
	ctx := context.Background()
	w := create(t, uc, r.ID)

	require.NoError(t, uc.Delete(ctx, w.ID))
	_, err := uc.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, w.ID), domain.ErrWorkerNotFound)

	list, err := uc.ListByRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
