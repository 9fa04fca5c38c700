package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Turnos-api/internal/application/report"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
)

type fakeGenerator struct {
	got report.Roster
}

func (g *fakeGenerator) GenerateRosterPDF(_ context.Context, r report.Roster) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func at(d, h, m int) time.Time { return time.Date(2024, 1, d, h, m, 0, 0, time.UTC) }

func TestTimesheetYRoster(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	r := &entity.Restaurant{Name: "Centro"}
	require.NoError(t, st.Restaurants().Create(ctx, r))
	ana := &entity.Worker{Name: "Ana", Email: "ana@example.com", Role: entity.JobRoleWaiter, RestaurantID: r.ID, Active: true}
	beto := &entity.Worker{Name: "Beto", Email: "beto@example.com", Role: entity.JobRoleChef, RestaurantID: r.ID, Active: true}
	require.NoError(t, st.Workers().Create(ctx, ana))
	require.NoError(t, st.Workers().Create(ctx, beto))

	in, out := at(1, 9, 5), at(1, 17, 25)
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: at(1, 9, 0), EndTime: at(1, 17, 0), WorkerID: ana.ID, RestaurantID: r.ID,
		Status: entity.ShiftCompleted, CheckedInTime: &in, CheckedOutTime: &out,
	}))
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: at(2, 12, 0), EndTime: at(2, 18, 20), WorkerID: beto.ID, RestaurantID: r.ID, Status: entity.ShiftScheduled,
	}))
	// Fuera de la ventana.
	require.NoError(t, st.Shifts().Save(ctx, &entity.Shift{
		StartTime: at(9, 12, 0), EndTime: at(9, 18, 0), WorkerID: beto.ID, RestaurantID: r.ID, Status: entity.ShiftScheduled,
	}))

	gen := &fakeGenerator{}
	uc := report.NewUseCase(st.Restaurants(), st.Shifts(), st.Timesheets(), gen, nil)

	ts, err := uc.Timesheet(ctx, r.ID, at(1, 0, 0), at(7, 23, 59))
	require.NoError(t, err)
	require.Len(t, ts.Lines, 2)
	assert.Equal(t, "Ana", ts.Lines[0].WorkerName)
	assert.Equal(t, "8", ts.Lines[0].ScheduledHours.String())
	assert.Equal(t, "8.33", ts.Lines[0].WorkedHours.String())
	assert.Equal(t, "6.33", ts.Lines[1].ScheduledHours.String())
	assert.Equal(t, "14.33", ts.TotalScheduledHours.String())
	assert.Equal(t, "8.33", ts.TotalWorkedHours.String())

	pdf, name, err := uc.RosterPDF(ctx, r.ID, at(1, 0, 0), at(7, 23, 59))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "turnos_20240101_20240107.pdf", name)
	assert.Len(t, gen.got.Shifts, 2)
	assert.Equal(t, "Centro", gen.got.Restaurant.Name)

	_, err = uc.Timesheet(ctx, "nope", at(1, 0, 0), at(7, 0, 0))
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}
