package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WorkerHours agregado de horas por trabajador en una ventana.
type WorkerHours struct {
	WorkerID       string
	WorkerName     string
	Role           string
	Shifts         int
	Completed      int
	ScheduledHours decimal.Decimal
	WorkedHours    decimal.Decimal
}

// TimesheetRepository consultas de agregación para el reporte de horas.
type TimesheetRepository interface {
	// WorkedHoursByRestaurant agrega los turnos contenidos en [start, end], ordenado por nombre.
	// Los turnos CANCELED se excluyen; WorkedHours solo suma turnos con entrada y salida.
	WorkedHoursByRestaurant(ctx context.Context, restaurantID string, start, end time.Time) ([]WorkerHours, error)
}
