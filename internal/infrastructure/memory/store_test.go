package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

func day(h int) time.Time { return time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC) }

func seeded(t *testing.T) (*Store, *entity.Worker) {
	t.Helper()
	ctx := context.Background()
	st := NewStore()
	rest := &entity.Restaurant{Name: "Centro"}
	require.NoError(t, st.Restaurants().Create(ctx, rest))
	w := &entity.Worker{Name: "Ana", Email: "ana@example.com", Role: entity.JobRoleWaiter, RestaurantID: rest.ID, Active: true}
	require.NoError(t, st.Workers().Create(ctx, w))
	return st, w
}

func TestShiftRepo_SaveAsignaIDEHidrata(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	s := &entity.Shift{StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID, Status: entity.ShiftScheduled}

	require.NoError(t, st.Shifts().Save(ctx, s))
	require.NotEmpty(t, s.ID)

	got, err := st.Shifts().GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Worker)
	assert.Equal(t, "Ana", got.Worker.Name)
	assert.Equal(t, "Centro", got.Restaurant.Name)
	assert.Equal(t, "Centro", got.Worker.RestaurantName())

	missing, err := st.Shifts().GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestShiftRepo_SaveSinTrabajadorEsConflicto(t *testing.T) {
	st, w := seeded(t)
	err := st.Shifts().Save(context.Background(), &entity.Shift{WorkerID: "x", RestaurantID: w.RestaurantID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestShiftRepo_RangoPorContencion(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	s := &entity.Shift{StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID}
	require.NoError(t, st.Shifts().Save(ctx, s))

	in, err := st.Shifts().ListByWorkerAndRange(ctx, w.ID, day(8), day(18))
	require.NoError(t, err)
	assert.Len(t, in, 1)

	out, err := st.Shifts().ListByRestaurantAndRange(ctx, w.RestaurantID, day(10), day(18))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRunShifts_RollbackSiFalla(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	s := &entity.Shift{StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID, Notes: "antes"}
	require.NoError(t, st.Shifts().Save(ctx, s))

	boom := errors.New("boom")
	err := st.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		got, err := shifts.GetForUpdate(ctx, s.ID)
		require.NoError(t, err)
		got.Notes = "después"
		require.NoError(t, shifts.Save(ctx, got))

		// Dentro de la unidad se ve el cambio pendiente.
		again, _ := shifts.GetByID(ctx, s.ID)
		assert.Equal(t, "después", again.Notes)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := st.Shifts().GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "antes", got.Notes)
}

func TestRunShifts_CommitAplicaBorrados(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	s := &entity.Shift{StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID}
	require.NoError(t, st.Shifts().Save(ctx, s))

	require.NoError(t, st.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		require.NoError(t, shifts.Delete(ctx, s.ID))
		list, _ := shifts.ListByWorker(ctx, w.ID)
		assert.Empty(t, list)
		return nil
	}))

	got, err := st.Shifts().GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWorkerRepo_EmailUnicoYBorradoConTurnos(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)

	dup := &entity.Worker{Name: "Otra", Email: "ANA@example.com", RestaurantID: w.RestaurantID}
	assert.ErrorIs(t, st.Workers().Create(ctx, dup), domain.ErrEmailAlreadyExists)

	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID}))
	assert.ErrorIs(t, st.Workers().Delete(ctx, w.ID), domain.ErrConflict)
}

func TestTimesheetRepo_SumaHoras(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	in, out := day(9), day(13).Add(30*time.Minute)
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: day(9), EndTime: day(17), WorkerID: w.ID, RestaurantID: w.RestaurantID,
		Status: entity.ShiftCompleted, CheckedInTime: &in, CheckedOutTime: &out,
	}))
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: day(18), EndTime: day(20), WorkerID: w.ID, RestaurantID: w.RestaurantID, Status: entity.ShiftCanceled,
	}))

	rows, err := st.Timesheets().WorkedHoursByRestaurant(ctx, w.RestaurantID, day(0), day(23))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Shifts)
	assert.Equal(t, 1, rows[0].Completed)
	assert.Equal(t, "8", rows[0].ScheduledHours.String())
	assert.Equal(t, "4.5", rows[0].WorkedHours.String())
}

func TestTimesheetRepo_HorasConFraccionDeSegundo(t *testing.T) {
	ctx := context.Background()
	st, w := seeded(t)
	in := day(9)
	out := in.Add(1800 * time.Millisecond)
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: day(9), EndTime: day(10), WorkerID: w.ID, RestaurantID: w.RestaurantID,
		Status: entity.ShiftCompleted, CheckedInTime: &in, CheckedOutTime: &out,
	}))

	rows, err := st.Timesheets().WorkedHoursByRestaurant(ctx, w.RestaurantID, day(0), day(23))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// 1.8 s = 0.0005 h; sin truncar a segundos enteros.
	assert.Equal(t, "0.0005", rows[0].WorkedHours.String())
}
