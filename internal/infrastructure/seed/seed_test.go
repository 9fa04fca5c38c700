package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/seed"
)

const fixture = `
restaurants:
  - name: Centro
    workers:
      - name: Ana
        email: ana@example.com
        password: password123
        role: Waiter
      - name: Beto
        email: beto@example.com
        password: password123
        role: Chef
        active: false
  - name: Norte
`

func TestLoad_Invalido(t *testing.T) {
	_, err := seed.Load(strings.NewReader("restaurants: []"))
	assert.Error(t, err)

	_, err = seed.Load(strings.NewReader("restaurants:\n  - name: X\n    workers:\n      - name: A\n        email: no-es-email\n        password: password123\n        role: Chef\n"))
	assert.Error(t, err)

	_, err = seed.Load(strings.NewReader("restaurants:\n  - name: X\n    menu: []\n"))
	assert.Error(t, err, "campo desconocido")
}

func TestApply_Idempotente(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	restaurants := restaurant.NewUseCase(st.Restaurants(), nil)
	workers := worker.NewUseCase(st.Workers(), st.Restaurants(), worker.JWTConfig{}, nil, nil)

	fx, err := seed.Load(strings.NewReader(fixture))
	require.NoError(t, err)

	res, err := seed.Apply(ctx, fx, restaurants, workers, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{RestaurantsCreated: 2, WorkersCreated: 2}, res)

	res, err = seed.Apply(ctx, fx, restaurants, workers, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{WorkersSkipped: 2}, res)

	list, err := restaurants.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ws, err := workers.ListByRestaurant(ctx, list[0].ID)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.True(t, ws[0].Active)
	assert.False(t, ws[1].Active)
}
