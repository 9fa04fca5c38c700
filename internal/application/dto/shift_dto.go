package dto

import (
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
	"github.com/jhoicas/Turnos-api/pkg/optional"
)

// CreateShiftRequest entrada para crear un turno. Status y timestamps son opcionales
// y permiten precargar turnos históricos.
type CreateShiftRequest struct {
	StartTime      *localtime.DateTime `json:"startTime" validate:"required"`
	EndTime        *localtime.DateTime `json:"endTime" validate:"required"`
	WorkerID       string              `json:"workerId" validate:"required"`
	RestaurantID   string              `json:"restaurantId" validate:"required"`
	Notes          string              `json:"notes" validate:"max=1000"`
	ShiftType      string              `json:"shiftType" validate:"max=50"`
	Priority       string              `json:"priority" validate:"max=20"`
	Location       string              `json:"location" validate:"max=200"`
	Status         string              `json:"status"`
	CheckedInTime  *localtime.DateTime `json:"checkedInTime"`
	CheckedOutTime *localtime.DateTime `json:"checkedOutTime"`
}

// UpdateShiftRequest actualización parcial: solo se aplican los campos presentes.
type UpdateShiftRequest struct {
	StartTime      optional.Value[localtime.DateTime] `json:"startTime"`
	EndTime        optional.Value[localtime.DateTime] `json:"endTime"`
	WorkerID       optional.Value[string]             `json:"workerId"`
	RestaurantID   optional.Value[string]             `json:"restaurantId"`
	Notes          optional.Value[string]             `json:"notes"`
	ShiftType      optional.Value[string]             `json:"shiftType"`
	Priority       optional.Value[string]             `json:"priority"`
	Location       optional.Value[string]             `json:"location"`
	Status         optional.Value[string]             `json:"status"`
	CheckedInTime  optional.Value[localtime.DateTime] `json:"checkedInTime"`
	CheckedOutTime optional.Value[localtime.DateTime] `json:"checkedOutTime"`
}

// CreateRecurringShiftsRequest plantilla de turno más una regla RFC 5545 (p. ej. "FREQ=WEEKLY;BYDAY=MO,WE,FR").
// La primera ocurrencia es StartTime/EndTime; las siguientes conservan su duración.
type CreateRecurringShiftsRequest struct {
	CreateShiftRequest
	RRule string              `json:"rrule" validate:"required"`
	Until *localtime.DateTime `json:"until"`
}

// ShiftResponse salida de un turno con el trabajador embebido.
type ShiftResponse struct {
	ID             string              `json:"id"`
	StartTime      localtime.DateTime  `json:"startTime"`
	EndTime        localtime.DateTime  `json:"endTime"`
	Worker         *WorkerResponse     `json:"worker"`
	RestaurantID   string              `json:"restaurantId"`
	RestaurantName string              `json:"restaurantName"`
	Notes          string              `json:"notes"`
	ShiftType      string              `json:"shiftType"`
	Priority       string              `json:"priority"`
	Location       string              `json:"location"`
	Status         string              `json:"status"`
	CheckedInTime  *localtime.DateTime `json:"checkedInTime"`
	CheckedOutTime *localtime.DateTime `json:"checkedOutTime"`
}

// NewShiftResponse mapea la entidad a la respuesta.
func NewShiftResponse(s *entity.Shift) ShiftResponse {
	out := ShiftResponse{
		ID:             s.ID,
		StartTime:      localtime.From(s.StartTime),
		EndTime:        localtime.From(s.EndTime),
		RestaurantID:   s.RestaurantID,
		Notes:          s.Notes,
		ShiftType:      s.ShiftType,
		Priority:       s.Priority,
		Location:       s.Location,
		Status:         string(s.Status),
		CheckedInTime:  localtime.Ptr(s.CheckedInTime),
		CheckedOutTime: localtime.Ptr(s.CheckedOutTime),
	}
	if s.Restaurant != nil {
		out.RestaurantName = s.Restaurant.Name
	}
	if s.Worker != nil {
		w := NewWorkerResponse(s.Worker)
		out.Worker = &w
	}
	return out
}

// NewShiftResponses mapea una lista; nunca devuelve nil.
func NewShiftResponses(list []*entity.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewShiftResponse(s))
	}
	return out
}
