package restaurant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
)

func TestRestaurantUseCase(t *testing.T) {
	ctx := context.Background()
	uc := restaurant.NewUseCase(memory.NewStore().Restaurants(), nil)

	norte, err := uc.Create(ctx, dto.CreateRestaurantRequest{Name: " Norte "})
	require.NoError(t, err)
	assert.Equal(t, "Norte", norte.Name)
	_, err = uc.Create(ctx, dto.CreateRestaurantRequest{Name: "Centro"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateRestaurantRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(ctx, norte.ID)
	require.NoError(t, err)
	assert.Equal(t, norte.ID, got.ID)

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Centro", list[0].Name)
}
