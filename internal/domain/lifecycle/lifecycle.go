// Package lifecycle contiene la máquina de estados de un turno.
//
//	SCHEDULED -> CHECKED_IN -> COMPLETED
//	SCHEDULED | CHECKED_IN | CANCELED -> CANCELED
//
// Las funciones mutan el turno recibido solo cuando la precondición se cumple;
// ante un error el turno queda intacto.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// CheckIn marca la entrada del trabajador asignado. Requiere estado SCHEDULED.
func CheckIn(s *entity.Shift, workerID string, now time.Time) error {
	if s.WorkerID != workerID {
		return fmt.Errorf("%w: turno %s, trabajador %s", domain.ErrWorkerMismatch, s.ID, workerID)
	}
	if s.Status != entity.ShiftScheduled {
		return invalid(s, entity.ShiftCheckedIn)
	}
	s.Status = entity.ShiftCheckedIn
	s.CheckedInTime = &now
	return nil
}

// CheckOut marca la salida del trabajador asignado. Requiere estado CHECKED_IN.
func CheckOut(s *entity.Shift, workerID string, now time.Time) error {
	if s.WorkerID != workerID {
		return fmt.Errorf("%w: turno %s, trabajador %s", domain.ErrWorkerMismatch, s.ID, workerID)
	}
	if s.Status != entity.ShiftCheckedIn {
		return invalid(s, entity.ShiftCompleted)
	}
	s.Status = entity.ShiftCompleted
	s.CheckedOutTime = &now
	return nil
}

// Cancel cancela el turno desde cualquier estado salvo COMPLETED. Re-cancelar está permitido.
func Cancel(s *entity.Shift) error {
	if s.Status == entity.ShiftCompleted {
		return invalid(s, entity.ShiftCanceled)
	}
	s.Status = entity.ShiftCanceled
	return nil
}

// SetStatus asigna cualquier estado reconocido sin mirar el actual (incluso hacia atrás).
// CHECKED_IN fija checkedInTime y COMPLETED fija checkedOutTime; los demás no tocan timestamps.
func SetStatus(s *entity.Shift, status entity.ShiftStatus, now time.Time) error {
	st, ok := entity.ParseShiftStatus(string(status))
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, string(status))
	}
	s.Status = st
	switch st {
	case entity.ShiftCheckedIn:
		s.CheckedInTime = &now
	case entity.ShiftCompleted:
		s.CheckedOutTime = &now
	}
	return nil
}

func invalid(s *entity.Shift, to entity.ShiftStatus) error {
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, s.Status, to)
}
