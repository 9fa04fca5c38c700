package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

// TimesheetLine horas de un trabajador en la ventana.
type TimesheetLine struct {
	WorkerID       string          `json:"workerId"`
	WorkerName     string          `json:"workerName"`
	Role           string          `json:"role"`
	Shifts         int             `json:"shifts"`
	Completed      int             `json:"completed"`
	ScheduledHours decimal.Decimal `json:"scheduledHours"`
	WorkedHours    decimal.Decimal `json:"workedHours"`
}

// TimesheetResponse reporte de horas por restaurante.
type TimesheetResponse struct {
	RestaurantID        string             `json:"restaurantId"`
	RestaurantName      string             `json:"restaurantName"`
	StartTime           localtime.DateTime `json:"startTime"`
	EndTime             localtime.DateTime `json:"endTime"`
	Lines               []TimesheetLine    `json:"lines"`
	TotalScheduledHours decimal.Decimal    `json:"totalScheduledHours"`
	TotalWorkedHours    decimal.Decimal    `json:"totalWorkedHours"`
}
