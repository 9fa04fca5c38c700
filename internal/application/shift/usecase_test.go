package shift_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/shift"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

func at(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }

func dt(t time.Time) *localtime.DateTime {
	d := localtime.From(t)
	return &d
}

// fixture arma un almacén con dos restaurantes y un trabajador en cada uno.
type fixture struct {
	uc    *shift.UseCase
	store *memory.Store
	now   time.Time
	r1    *entity.Restaurant
	r2    *entity.Restaurant
	w1    *entity.Worker // pertenece a r1
	w2    *entity.Worker // pertenece a r2
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{store: memory.NewStore(), now: at(8, 55)}

	f.r1 = &entity.Restaurant{Name: "Centro"}
	f.r2 = &entity.Restaurant{Name: "Norte"}
	require.NoError(t, f.store.Restaurants().Create(ctx, f.r1))
	require.NoError(t, f.store.Restaurants().Create(ctx, f.r2))
	f.w1 = &entity.Worker{Name: "Ana", Email: "ana@example.com", Role: entity.JobRoleWaiter, RestaurantID: f.r1.ID, Active: true}
	f.w2 = &entity.Worker{Name: "Luis", Email: "luis@example.com", Role: entity.JobRoleChef, RestaurantID: f.r2.ID, Active: true}
	require.NoError(t, f.store.Workers().Create(ctx, f.w1))
	require.NoError(t, f.store.Workers().Create(ctx, f.w2))

	clock := localtime.ClockFunc(func() time.Time { return f.now })
	f.uc = shift.NewUseCase(f.store.Shifts(), f.store.Workers(), f.store.Restaurants(), f.store, clock, shift.Options{}, nil)
	return f
}

func (f *fixture) create(t *testing.T) *entity.Shift {
	t.Helper()
	s, err := f.uc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: dt(at(9, 0)), EndTime: dt(at(17, 0)),
		WorkerID: f.w1.ID, RestaurantID: f.r1.ID,
		Notes: "apertura", ShiftType: "Regular", Priority: "High", Location: "Barra",
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	list, err := f.store.Shifts().ListByRestaurant(context.Background(), f.r1.ID)
	require.NoError(t, err)
	other, err := f.store.Shifts().ListByRestaurant(context.Background(), f.r2.ID)
	require.NoError(t, err)
	return len(list) + len(other)
}

func TestCreateShift_PorDefectoScheduled(t *testing.T) {
	f := newFixture(t)
	s := f.create(t)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, entity.ShiftScheduled, s.Status)
	assert.Nil(t, s.CheckedInTime)
	assert.Nil(t, s.CheckedOutTime)
	assert.Equal(t, "Ana", s.Worker.Name)
	assert.Equal(t, "Centro", s.Restaurant.Name)

	got, err := f.uc.FindShiftByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, at(9, 0), got.StartTime)
	assert.Equal(t, "Barra", got.Location)
}

func TestCreateShift_AsignacionInvalidaNoPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pairs := []struct{ worker, restaurant string }{
		{f.w1.ID, f.r2.ID},
		{f.w2.ID, f.r1.ID},
	}
	for _, p := range pairs {
		_, err := f.uc.CreateShift(ctx, dto.CreateShiftRequest{
			StartTime: dt(at(9, 0)), EndTime: dt(at(17, 0)), WorkerID: p.worker, RestaurantID: p.restaurant,
		})
		assert.ErrorIs(t, err, domain.ErrAssignmentMismatch)
	}
	assert.Equal(t, 0, f.count(t))
}

func TestCreateShift_ErroresDeResolucion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := dto.CreateShiftRequest{StartTime: dt(at(9, 0)), EndTime: dt(at(17, 0))}

	req := base
	req.WorkerID, req.RestaurantID = "nadie", "tampoco"
	_, err := f.uc.CreateShift(ctx, req)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound, "el trabajador se resuelve primero")

	req.WorkerID = f.w1.ID
	_, err = f.uc.CreateShift(ctx, req)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	req.RestaurantID = f.r1.ID
	req.Status = "PAUSED"
	_, err = f.uc.CreateShift(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	req = base
	req.WorkerID, req.RestaurantID, req.EndTime = f.w1.ID, f.r1.ID, nil
	_, err = f.uc.CreateShift(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, f.count(t))
}

func TestCreateShift_PrecargaEstadoYTimestamps(t *testing.T) {
	f := newFixture(t)
	s, err := f.uc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: dt(at(9, 0)), EndTime: dt(at(17, 0)), WorkerID: f.w1.ID, RestaurantID: f.r1.ID,
		Status: "COMPLETED", CheckedInTime: dt(at(9, 2)), CheckedOutTime: dt(at(17, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCompleted, s.Status)
	assert.Equal(t, at(9, 2), *s.CheckedInTime)
	assert.Equal(t, at(17, 1), *s.CheckedOutTime)
}

func TestCreateShift_SinValidarOrdenDeFechas(t *testing.T) {
	f := newFixture(t)
	s, err := f.uc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: dt(at(17, 0)), EndTime: dt(at(9, 0)), WorkerID: f.w1.ID, RestaurantID: f.r1.ID,
	})
	require.NoError(t, err)
	assert.True(t, s.EndTime.Before(s.StartTime))
}

func TestUpdateShift_SoloNotas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	var req dto.UpdateShiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"cierre","location":null}`), &req))
	got, err := f.uc.UpdateShift(ctx, s.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "cierre", got.Notes)
	assert.Equal(t, "Barra", got.Location, "null no sobrescribe")
	assert.Equal(t, s.StartTime, got.StartTime)
	assert.Equal(t, s.EndTime, got.EndTime)
	assert.Equal(t, s.WorkerID, got.WorkerID)
	assert.Equal(t, s.RestaurantID, got.RestaurantID)
	assert.Equal(t, entity.ShiftScheduled, got.Status)

	stored, err := f.uc.FindShiftByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "cierre", stored.Notes)
}

func TestUpdateShift_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	_, err := f.uc.UpdateShift(ctx, "nope", dto.UpdateShiftRequest{})
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)

	var req dto.UpdateShiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"workerId":"nadie"}`), &req))
	_, err = f.uc.UpdateShift(ctx, s.ID, req)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)

	req = dto.UpdateShiftRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"restaurantId":"nada"}`), &req))
	_, err = f.uc.UpdateShift(ctx, s.ID, req)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	req = dto.UpdateShiftRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"workerId":"nadie","notes":"x"}`), &req))
	_, err = f.uc.UpdateShift(ctx, s.ID, req)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)

	got, err := f.uc.FindShiftByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "apertura", got.Notes, "un fallo no escribe nada")
}

func TestUpdateShift_CambioDeTrabajadorSolo_NoRevalidaRestaurante(t *testing.T) {
	f := newFixture(t)
	s := f.create(t)

	var req dto.UpdateShiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"workerId":"`+f.w2.ID+`"}`), &req))
	got, err := f.uc.UpdateShift(context.Background(), s.ID, req)
	require.NoError(t, err)
	assert.Equal(t, f.w2.ID, got.WorkerID)
	assert.Equal(t, f.r1.ID, got.RestaurantID)
}

// Con ambos ids presentes tampoco se comprueba la pertenencia.
func TestUpdateShift_AmbosIDs_NoRevalidaPertenencia(t *testing.T) {
	f := newFixture(t)
	s := f.create(t)

	var req dto.UpdateShiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"workerId":"`+f.w1.ID+`","restaurantId":"`+f.r2.ID+`"}`), &req))
	got, err := f.uc.UpdateShift(context.Background(), s.ID, req)
	require.NoError(t, err)
	assert.Equal(t, f.w1.ID, got.WorkerID)
	assert.Equal(t, f.r2.ID, got.RestaurantID)
	assert.Equal(t, "Norte", got.Restaurant.Name)
}

func TestUpdateShift_EstadoLibreYEtiquetaInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	var req dto.UpdateShiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"COMPLETED","startTime":"2024-01-01T10:00:00"}`), &req))
	got, err := f.uc.UpdateShift(ctx, s.ID, req)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCompleted, got.Status)
	assert.Equal(t, at(10, 0), got.StartTime)
	assert.Nil(t, got.CheckedOutTime, "update no calcula timestamps")

	req = dto.UpdateShiftRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"DONE"}`), &req))
	_, err = f.uc.UpdateShift(ctx, s.ID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestFind_ListasVaciasNoNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	byR, err := f.uc.FindShiftsByRestaurantID(ctx, f.r1.ID)
	require.NoError(t, err)
	assert.NotNil(t, byR)
	assert.Empty(t, byR)

	byW, err := f.uc.FindShiftsByWorkerID(ctx, "desconocido")
	require.NoError(t, err)
	assert.NotNil(t, byW)

	_, err = f.uc.FindShiftByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestFindByDateRange_Contencion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	got, err := f.uc.FindShiftsByWorkerIDAndDateRange(ctx, f.w1.ID, at(8, 0), at(18, 0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s.ID, got[0].ID)

	got, err = f.uc.FindShiftsByWorkerIDAndDateRange(ctx, f.w1.ID, at(10, 0), at(18, 0))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.uc.FindShiftsByRestaurantIDAndDateRange(ctx, f.r1.ID, at(8, 0), at(18, 0))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = f.uc.FindShiftsByRestaurantIDAndDateRange(ctx, f.r1.ID, at(8, 0), at(16, 0))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteShift_CualquierEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)
	_, err := f.uc.UpdateShiftStatus(ctx, s.ID, "COMPLETED")
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteShift(ctx, s.ID))
	_, err = f.uc.FindShiftByID(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)

	assert.ErrorIs(t, f.uc.DeleteShift(ctx, s.ID), domain.ErrShiftNotFound)
}

func TestCheckIn_Doble(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	first, err := f.uc.CheckInShift(ctx, s.ID, f.w1.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCheckedIn, first.Status)
	assert.Equal(t, at(8, 55), *first.CheckedInTime)

	f.now = at(9, 30)
	_, err = f.uc.CheckInShift(ctx, s.ID, f.w1.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := f.uc.FindShiftByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCheckedIn, got.Status)
	assert.Equal(t, at(8, 55), *got.CheckedInTime)
}

func TestCheckIn_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	_, err := f.uc.CheckInShift(ctx, "nope", f.w1.ID)
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)

	_, err = f.uc.CheckInShift(ctx, s.ID, f.w2.ID)
	assert.ErrorIs(t, err, domain.ErrWorkerMismatch)

	_, err = f.uc.CheckOutShift(ctx, s.ID, f.w1.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "check-out desde SCHEDULED")
}

func TestCancelShift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	scheduled := f.create(t)
	got, err := f.uc.CancelShift(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCanceled, got.Status)

	again, err := f.uc.CancelShift(ctx, scheduled.ID)
	require.NoError(t, err, "re-cancelar está permitido")
	assert.Equal(t, "apertura", again.Notes)

	checkedIn := f.create(t)
	_, err = f.uc.CheckInShift(ctx, checkedIn.ID, f.w1.ID)
	require.NoError(t, err)
	_, err = f.uc.CancelShift(ctx, checkedIn.ID)
	require.NoError(t, err)

	_, err = f.uc.CancelShift(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestUpdateShiftStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)

	_, err := f.uc.UpdateShiftStatus(ctx, "nope", "BOGUS")
	assert.ErrorIs(t, err, domain.ErrShiftNotFound, "el turno se resuelve antes que la etiqueta")

	_, err = f.uc.UpdateShiftStatus(ctx, s.ID, "BOGUS")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := f.uc.UpdateShiftStatus(ctx, s.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, at(8, 55), *got.CheckedOutTime)
	assert.Nil(t, got.CheckedInTime)

	got, err = f.uc.UpdateShiftStatus(ctx, s.ID, "SCHEDULED")
	require.NoError(t, err, "puede retroceder")
	assert.Equal(t, entity.ShiftScheduled, got.Status)
	assert.NotNil(t, got.CheckedOutTime)
}

func TestEscenarioCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t)
	assert.Equal(t, entity.ShiftScheduled, s.Status)

	f.now = at(9, 1)
	in, err := f.uc.CheckInShift(ctx, s.ID, f.w1.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCheckedIn, in.Status)
	assert.Equal(t, at(9, 1), *in.CheckedInTime)

	f.now = at(17, 3)
	out, err := f.uc.CheckOutShift(ctx, s.ID, f.w1.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftCompleted, out.Status)
	assert.Equal(t, at(17, 3), *out.CheckedOutTime)

	_, err = f.uc.CancelShift(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
