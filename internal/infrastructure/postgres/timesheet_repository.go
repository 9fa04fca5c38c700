package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

var _ repository.TimesheetRepository = (*TimesheetRepo)(nil)

// TimesheetRepo agregaciones de horas en SQL. Las horas llegan como NUMERIC y se
// escanean a decimal.Decimal gracias al codec registrado en el pool.
type TimesheetRepo struct {
	q Querier
}

// NewTimesheetRepository construye el adaptador.
func NewTimesheetRepository(q Querier) *TimesheetRepo {
	return &TimesheetRepo{q: q}
}

func (r *TimesheetRepo) WorkedHoursByRestaurant(ctx context.Context, restaurantID string, start, end time.Time) ([]repository.WorkerHours, error) {
	query := `
		SELECT w.id, w.name, w.role,
		       COUNT(*)::int AS shifts,
		       COUNT(*) FILTER (WHERE s.status = 'COMPLETED')::int AS completed,
		       COALESCE(SUM(EXTRACT(EPOCH FROM (s.end_time - s.start_time))), 0)::numeric / 3600 AS scheduled_hours,
		       COALESCE(SUM(EXTRACT(EPOCH FROM (s.checked_out_time - s.checked_in_time)))
		                FILTER (WHERE s.checked_in_time IS NOT NULL AND s.checked_out_time IS NOT NULL), 0)::numeric / 3600 AS worked_hours
		FROM shifts s
		JOIN workers w ON w.id = s.worker_id
		WHERE s.restaurant_id = $1
		  AND s.status <> 'CANCELED'
		  AND s.start_time >= $2 AND s.end_time <= $3
		GROUP BY w.id, w.name, w.role
		ORDER BY w.name, w.id`

	rows, err := r.q.Query(ctx, query, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("timesheet query: %w", err)
	}
	defer rows.Close()

	out := []repository.WorkerHours{}
	for rows.Next() {
		var wh repository.WorkerHours
		if err := rows.Scan(&wh.WorkerID, &wh.WorkerName, &wh.Role, &wh.Shifts, &wh.Completed,
			&wh.ScheduledHours, &wh.WorkedHours); err != nil {
			return nil, fmt.Errorf("scan timesheet: %w", err)
		}
		out = append(out, wh)
	}
	return out, rows.Err()
}
