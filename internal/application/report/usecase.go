package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

// UseCase reportes de horas y cuadrante de turnos por restaurante.
type UseCase struct {
	restaurants repository.RestaurantRepository
	shifts      repository.ShiftRepository
	timesheets  repository.TimesheetRepository
	generator   RosterPDFGenerator
	clock       localtime.Clock
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	restaurants repository.RestaurantRepository,
	shifts repository.ShiftRepository,
	timesheets repository.TimesheetRepository,
	generator RosterPDFGenerator,
	clock localtime.Clock,
) *UseCase {
	if clock == nil {
		clock = localtime.SystemClock{}
	}
	return &UseCase{restaurants: restaurants, shifts: shifts, timesheets: timesheets, generator: generator, clock: clock}
}

// Timesheet horas programadas y trabajadas por trabajador para los turnos contenidos en [start, end].
// Las horas se redondean a 2 decimales.
func (uc *UseCase) Timesheet(ctx context.Context, restaurantID string, start, end time.Time) (*dto.TimesheetResponse, error) {
	r, err := uc.restaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.timesheets.WorkedHoursByRestaurant(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: horas: %w", err)
	}

	out := &dto.TimesheetResponse{
		RestaurantID:        r.ID,
		RestaurantName:      r.Name,
		StartTime:           localtime.From(start),
		EndTime:             localtime.From(end),
		Lines:               make([]dto.TimesheetLine, 0, len(rows)),
		TotalScheduledHours: decimal.Zero,
		TotalWorkedHours:    decimal.Zero,
	}
	for _, row := range rows {
		scheduled := row.ScheduledHours.Round(2)
		worked := row.WorkedHours.Round(2)
		out.Lines = append(out.Lines, dto.TimesheetLine{
			WorkerID:       row.WorkerID,
			WorkerName:     row.WorkerName,
			Role:           row.Role,
			Shifts:         row.Shifts,
			Completed:      row.Completed,
			ScheduledHours: scheduled,
			WorkedHours:    worked,
		})
		out.TotalScheduledHours = out.TotalScheduledHours.Add(scheduled)
		out.TotalWorkedHours = out.TotalWorkedHours.Add(worked)
	}
	return out, nil
}

// RosterPDF genera el cuadrante en PDF. Devuelve los bytes y un nombre de archivo sugerido.
func (uc *UseCase) RosterPDF(ctx context.Context, restaurantID string, start, end time.Time) ([]byte, string, error) {
	r, err := uc.restaurant(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}
	shifts, err := uc.shifts.ListByRestaurantAndRange(ctx, restaurantID, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: turnos: %w", err)
	}
	if shifts == nil {
		shifts = []*entity.Shift{}
	}
	pdf, err := uc.generator.GenerateRosterPDF(ctx, Roster{
		Restaurant:  r,
		Start:       start,
		End:         end,
		Shifts:      shifts,
		GeneratedAt: uc.clock.Now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: pdf: %w", err)
	}
	filename := fmt.Sprintf("turnos_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	return pdf, filename, nil
}

func (uc *UseCase) restaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	r, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	}
	return r, nil
}
