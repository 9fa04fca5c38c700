package entity

import (
	"fmt"
	"strings"
	"time"
)

// ShiftStatus estado del ciclo de vida de un turno. En el cable viaja como la etiqueta en mayúsculas.
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "SCHEDULED"
	ShiftCheckedIn ShiftStatus = "CHECKED_IN"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCanceled  ShiftStatus = "CANCELED"
)

// ShiftStatuses lista los estados reconocidos en orden del ciclo de vida.
var ShiftStatuses = []ShiftStatus{ShiftScheduled, ShiftCheckedIn, ShiftCompleted, ShiftCanceled}

// ParseShiftStatus valida una etiqueta de estado. Solo acepta las cuatro etiquetas exactas.
func ParseShiftStatus(s string) (ShiftStatus, bool) {
	for _, st := range ShiftStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Valid indica si el estado es uno de los reconocidos.
func (s ShiftStatus) Valid() bool {
	_, ok := ParseShiftStatus(string(s))
	return ok
}

func (s ShiftStatus) String() string { return string(s) }

// Shift asignación de un trabajador a un restaurante durante un intervalo.
// Los instantes son locales sin zona (ver pkg/localtime).
type Shift struct {
	ID             string
	StartTime      time.Time
	EndTime        time.Time
	WorkerID       string
	RestaurantID   string
	Notes          string
	ShiftType      string // Regular, Overtime, Training... (abierto)
	Priority       string // Low, Medium, High (abierto)
	Location       string
	Status         ShiftStatus
	CheckedInTime  *time.Time
	CheckedOutTime *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Instantáneas hidratadas en lecturas para armar la respuesta; pueden ser nil.
	Worker     *Worker
	Restaurant *Restaurant
}

// Within indica si el turno está contenido en [start, end] (contención, no solapamiento).
func (s *Shift) Within(start, end time.Time) bool {
	return !s.StartTime.Before(start) && !s.EndTime.After(end)
}

// Clone copia el turno, incluidos los punteros a timestamps.
func (s *Shift) Clone() *Shift {
	if s == nil {
		return nil
	}
	c := *s
	if s.CheckedInTime != nil {
		t := *s.CheckedInTime
		c.CheckedInTime = &t
	}
	if s.CheckedOutTime != nil {
		t := *s.CheckedOutTime
		c.CheckedOutTime = &t
	}
	return &c
}

func (s *Shift) String() string {
	return fmt.Sprintf("shift %s [%s] worker=%s restaurant=%s", s.ID, strings.ToLower(string(s.Status)), s.WorkerID, s.RestaurantID)
}
