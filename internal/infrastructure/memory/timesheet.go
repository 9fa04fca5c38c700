package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var _ repository.TimesheetRepository = (*TimesheetRepo)(nil)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// TimesheetRepo agrega horas recorriendo los turnos en memoria.
type TimesheetRepo struct{ st *Store }

func (r *TimesheetRepo) WorkedHoursByRestaurant(_ context.Context, restaurantID string, start, end time.Time) ([]repository.WorkerHours, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	byWorker := make(map[string]*repository.WorkerHours)
	for _, s := range r.st.shifts {
		if s.RestaurantID != restaurantID || s.Status == entity.ShiftCanceled || !s.Within(start, end) {
			continue
		}
		wh, ok := byWorker[s.WorkerID]
		if !ok {
			wh = &repository.WorkerHours{WorkerID: s.WorkerID}
			if w, found := r.st.workers[s.WorkerID]; found {
				wh.WorkerName, wh.Role = w.Name, w.Role
			}
			byWorker[s.WorkerID] = wh
		}
		wh.Shifts++
		if s.Status == entity.ShiftCompleted {
			wh.Completed++
		}
		wh.ScheduledHours = wh.ScheduledHours.Add(hours(s.EndTime.Sub(s.StartTime)))
		if s.CheckedInTime != nil && s.CheckedOutTime != nil {
			wh.WorkedHours = wh.WorkedHours.Add(hours(s.CheckedOutTime.Sub(*s.CheckedInTime)))
		}
	}

	out := make([]repository.WorkerHours, 0, len(byWorker))
	for _, wh := range byWorker {
		out = append(out, *wh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkerName != out[j].WorkerName {
			return out[i].WorkerName < out[j].WorkerName
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out, nil
}

func hours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d)).Div(nanosPerHour)
}
