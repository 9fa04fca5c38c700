package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// CreateRecurringShifts expande una regla RRULE a partir del primer turno y guarda todas las
// ocurrencias en una sola unidad atómica. La asignación se valida una vez, igual que en CreateShift.
// Cada ocurrencia conserva la duración del primer turno; checkedInTime/checkedOutTime no se copian.
func (uc *UseCase) CreateRecurringShifts(ctx context.Context, in dto.CreateRecurringShiftsRequest) ([]*entity.Shift, error) {
	tmpl, err := uc.newShift(ctx, in.CreateShiftRequest)
	if err != nil {
		return nil, err
	}
	starts, err := uc.occurrences(in, tmpl.StartTime)
	if err != nil {
		return nil, err
	}

	duration := tmpl.EndTime.Sub(tmpl.StartTime)
	out := make([]*entity.Shift, 0, len(starts))
	for _, start := range starts {
		s := tmpl.Clone()
		s.StartTime = start
		s.EndTime = start.Add(duration)
		s.CheckedInTime, s.CheckedOutTime = nil, nil
		out = append(out, s)
	}

	err = uc.tx.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		for _, s := range out {
			if err := shifts.Save(ctx, s); err != nil {
				return fmt.Errorf("guardar turno recurrente: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("worker_id", tmpl.WorkerID).Int("count", len(out)).Str("rrule", in.RRule).Msg("turnos recurrentes creados")
	return out, nil
}

// occurrences devuelve los inicios de cada ocurrencia. El límite es UNTIL/COUNT de la regla,
// el campo until de la petición o, si no hay ninguno, el horizonte configurado.
func (uc *UseCase) occurrences(in dto.CreateRecurringShiftsRequest, first time.Time) ([]time.Time, error) {
	opt, err := rrule.StrToROption(in.RRule)
	if err != nil {
		return nil, fmt.Errorf("%w: rrule: %v", domain.ErrInvalidInput, err)
	}
	opt.Dtstart = first
	if in.Until != nil && !in.Until.IsZero() {
		opt.Until = in.Until.Time
	}
	if opt.Until.IsZero() && opt.Count == 0 {
		opt.Until = first.AddDate(0, 0, uc.opts.RecurringHorizonDays)
	}
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: rrule: %v", domain.ErrInvalidInput, err)
	}

	limit := uc.opts.RecurringMaxOccurrences
	var starts []time.Time
	next := rule.Iterator()
	for t, ok := next(); ok; t, ok = next() {
		if len(starts) == limit {
			return nil, fmt.Errorf("%w: la regla genera más de %d turnos", domain.ErrInvalidInput, limit)
		}
		starts = append(starts, t.In(first.Location()))
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: la regla no genera ningún turno", domain.ErrInvalidInput)
	}
	return starts, nil
}
