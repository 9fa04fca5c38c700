package shift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/lifecycle"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// Options límites de la expansión de turnos recurrentes.
type Options struct {
	RecurringMaxOccurrences int
	RecurringHorizonDays    int
}

// UseCase motor del ciclo de vida de turnos: valida asignaciones, aplica la máquina de estados
// y media toda escritura sobre el almacén de turnos.
type UseCase struct {
	shifts      repository.ShiftRepository
	workers     WorkerDirectory
	restaurants RestaurantDirectory
	tx          TxRunner
	clock       localtime.Clock
	opts        Options
	log         *logger.Logger
}

// NewUseCase construye el motor de turnos.
func NewUseCase(
	shifts repository.ShiftRepository,
	workers WorkerDirectory,
	restaurants RestaurantDirectory,
	tx TxRunner,
	clock localtime.Clock,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if clock == nil {
		clock = localtime.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.RecurringMaxOccurrences <= 0 {
		opts.RecurringMaxOccurrences = 100
	}
	if opts.RecurringHorizonDays <= 0 {
		opts.RecurringHorizonDays = 92
	}
	return &UseCase{
		shifts:      shifts,
		workers:     workers,
		restaurants: restaurants,
		tx:          tx,
		clock:       clock,
		opts:        opts,
		log:         log.Component("shift"),
	}
}

// CreateShift valida trabajador, restaurante y asignación y persiste el turno.
// Sin status el turno nace SCHEDULED.
func (uc *UseCase) CreateShift(ctx context.Context, in dto.CreateShiftRequest) (*entity.Shift, error) {
	s, err := uc.newShift(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.shifts.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar turno: %w", err)
	}
	uc.log.Debug().Str("shift_id", s.ID).Str("worker_id", s.WorkerID).Str("status", string(s.Status)).Msg("turno creado")
	return s, nil
}

// newShift arma el turno validado sin persistirlo.
func (uc *UseCase) newShift(ctx context.Context, in dto.CreateShiftRequest) (*entity.Shift, error) {
	if in.StartTime == nil || in.EndTime == nil || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime y endTime son obligatorios", domain.ErrInvalidInput)
	}
	worker, restaurant, err := uc.resolveAssignment(ctx, in.WorkerID, in.RestaurantID)
	if err != nil {
		return nil, err
	}

	status := entity.ShiftScheduled
	if in.Status != "" {
		st, ok := entity.ParseShiftStatus(in.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
		}
		status = st
	}

	now := uc.clock.Now()
	return &entity.Shift{
		StartTime:      in.StartTime.Time,
		EndTime:        in.EndTime.Time,
		WorkerID:       worker.ID,
		RestaurantID:   restaurant.ID,
		Notes:          in.Notes,
		ShiftType:      in.ShiftType,
		Priority:       in.Priority,
		Location:       in.Location,
		Status:         status,
		CheckedInTime:  timePtr(in.CheckedInTime),
		CheckedOutTime: timePtr(in.CheckedOutTime),
		CreatedAt:      now,
		UpdatedAt:      now,
		Worker:         worker,
		Restaurant:     restaurant,
	}, nil
}

// UpdateShift aplica una actualización parcial. Trabajador y restaurante se re-resuelven solo si vienen
// y la pertenencia trabajador/restaurante no se vuelve a comprobar. No pasa por la máquina de estados.
func (uc *UseCase) UpdateShift(ctx context.Context, shiftID string, in dto.UpdateShiftRequest) (*entity.Shift, error) {
	var out *entity.Shift
	err := uc.tx.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		s, err := mustGet(ctx, shifts.GetForUpdate, shiftID)
		if err != nil {
			return err
		}

		var worker *entity.Worker
		if id, ok := in.WorkerID.Get(); ok {
			if worker, err = uc.findWorker(ctx, id); err != nil {
				return err
			}
		}
		var restaurant *entity.Restaurant
		if id, ok := in.RestaurantID.Get(); ok {
			if restaurant, err = uc.findRestaurant(ctx, id); err != nil {
				return err
			}
		}
		var status entity.ShiftStatus
		if label, ok := in.Status.Get(); ok {
			st, valid := entity.ParseShiftStatus(label)
			if !valid {
				return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, label)
			}
			status = st
		}

		if v, ok := in.StartTime.Get(); ok {
			s.StartTime = v.Time
		}
		if v, ok := in.EndTime.Get(); ok {
			s.EndTime = v.Time
		}
		if worker != nil {
			s.WorkerID, s.Worker = worker.ID, worker
		}
		if restaurant != nil {
			s.RestaurantID, s.Restaurant = restaurant.ID, restaurant
		}
		in.Notes.Apply(&s.Notes)
		in.ShiftType.Apply(&s.ShiftType)
		in.Priority.Apply(&s.Priority)
		in.Location.Apply(&s.Location)
		if status != "" {
			s.Status = status
		}
		if v, ok := in.CheckedInTime.Get(); ok {
			s.CheckedInTime = timePtr(&v)
		}
		if v, ok := in.CheckedOutTime.Get(); ok {
			s.CheckedOutTime = timePtr(&v)
		}
		s.UpdatedAt = uc.clock.Now()

		if err := shifts.Save(ctx, s); err != nil {
			return fmt.Errorf("guardar turno: %w", err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("shift_id", shiftID).Msg("turno actualizado")
	return out, nil
}

// FindShiftByID devuelve el turno o ErrShiftNotFound.
func (uc *UseCase) FindShiftByID(ctx context.Context, shiftID string) (*entity.Shift, error) {
	return mustGet(ctx, uc.shifts.GetByID, shiftID)
}

// FindShiftsByRestaurantID lista los turnos del restaurante; vacío si no hay.
func (uc *UseCase) FindShiftsByRestaurantID(ctx context.Context, restaurantID string) ([]*entity.Shift, error) {
	return nonNil(uc.shifts.ListByRestaurant(ctx, restaurantID))
}

// FindShiftsByWorkerID lista los turnos del trabajador; vacío si no hay.
func (uc *UseCase) FindShiftsByWorkerID(ctx context.Context, workerID string) ([]*entity.Shift, error) {
	return nonNil(uc.shifts.ListByWorker(ctx, workerID))
}

// FindShiftsByWorkerIDAndDateRange lista los turnos del trabajador contenidos en [start, end].
func (uc *UseCase) FindShiftsByWorkerIDAndDateRange(ctx context.Context, workerID string, start, end time.Time) ([]*entity.Shift, error) {
	return nonNil(uc.shifts.ListByWorkerAndRange(ctx, workerID, start, end))
}

// FindShiftsByRestaurantIDAndDateRange lista los turnos del restaurante contenidos en [start, end].
func (uc *UseCase) FindShiftsByRestaurantIDAndDateRange(ctx context.Context, restaurantID string, start, end time.Time) ([]*entity.Shift, error) {
	return nonNil(uc.shifts.ListByRestaurantAndRange(ctx, restaurantID, start, end))
}

// DeleteShift elimina el turno en cualquier estado.
func (uc *UseCase) DeleteShift(ctx context.Context, shiftID string) error {
	err := uc.tx.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		if _, err := mustGet(ctx, shifts.GetForUpdate, shiftID); err != nil {
			return err
		}
		return shifts.Delete(ctx, shiftID)
	})
	if err != nil {
		return err
	}
	uc.log.Debug().Str("shift_id", shiftID).Msg("turno eliminado")
	return nil
}

// CheckInShift SCHEDULED -> CHECKED_IN para el trabajador asignado; fija checkedInTime.
func (uc *UseCase) CheckInShift(ctx context.Context, shiftID, workerID string) (*entity.Shift, error) {
	return uc.transition(ctx, shiftID, "check-in", func(s *entity.Shift, now time.Time) error {
		return lifecycle.CheckIn(s, workerID, now)
	})
}

// CheckOutShift CHECKED_IN -> COMPLETED para el trabajador asignado; fija checkedOutTime.
func (uc *UseCase) CheckOutShift(ctx context.Context, shiftID, workerID string) (*entity.Shift, error) {
	return uc.transition(ctx, shiftID, "check-out", func(s *entity.Shift, now time.Time) error {
		return lifecycle.CheckOut(s, workerID, now)
	})
}

// CancelShift cancela el turno salvo que esté COMPLETED.
func (uc *UseCase) CancelShift(ctx context.Context, shiftID string) (*entity.Shift, error) {
	return uc.transition(ctx, shiftID, "cancel", func(s *entity.Shift, _ time.Time) error {
		return lifecycle.Cancel(s)
	})
}

// UpdateShiftStatus asigna cualquier estado reconocido sin importar el actual.
// Primero resuelve el turno y luego valida la etiqueta.
func (uc *UseCase) UpdateShiftStatus(ctx context.Context, shiftID, status string) (*entity.Shift, error) {
	return uc.transition(ctx, shiftID, "status", func(s *entity.Shift, now time.Time) error {
		return lifecycle.SetStatus(s, entity.ShiftStatus(strings.TrimSpace(status)), now)
	})
}

// transition lee el turno bloqueado, aplica fn y persiste. Si fn falla no se escribe nada.
func (uc *UseCase) transition(ctx context.Context, shiftID, op string, fn func(*entity.Shift, time.Time) error) (*entity.Shift, error) {
	var out *entity.Shift
	err := uc.tx.RunShifts(ctx, func(shifts repository.ShiftRepository) error {
		s, err := mustGet(ctx, shifts.GetForUpdate, shiftID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := fn(s, now); err != nil {
			uc.log.Info().Err(err).Str("shift_id", shiftID).Str("op", op).Msg("transición rechazada")
			return err
		}
		s.UpdatedAt = now
		if err := shifts.Save(ctx, s); err != nil {
			return fmt.Errorf("guardar turno: %w", err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("shift_id", shiftID).Str("op", op).Str("status", string(out.Status)).Msg("transición aplicada")
	return out, nil
}

// resolveAssignment resuelve trabajador y restaurante (en ese orden) y exige pertenencia.
func (uc *UseCase) resolveAssignment(ctx context.Context, workerID, restaurantID string) (*entity.Worker, *entity.Restaurant, error) {
	worker, err := uc.findWorker(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	restaurant, err := uc.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	if !worker.BelongsTo(restaurant.ID) {
		return nil, nil, mismatch(worker, restaurant)
	}
	return worker, restaurant, nil
}

func (uc *UseCase) findWorker(ctx context.Context, id string) (*entity.Worker, error) {
	w, err := uc.workers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar trabajador: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkerNotFound, id)
	}
	return w, nil
}

func (uc *UseCase) findRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	r, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar restaurante: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	}
	return r, nil
}

func mustGet(ctx context.Context, get func(context.Context, string) (*entity.Shift, error), id string) (*entity.Shift, error) {
	s, err := get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar turno: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, id)
	}
	return s, nil
}

func mismatch(w *entity.Worker, r *entity.Restaurant) error {
	return fmt.Errorf("%w: trabajador %s, restaurante %s", domain.ErrAssignmentMismatch, w.ID, r.ID)
}

func nonNil(list []*entity.Shift, err error) ([]*entity.Shift, error) {
	if err != nil {
		return nil, fmt.Errorf("listar turnos: %w", err)
	}
	if list == nil {
		list = []*entity.Shift{}
	}
	return list, nil
}

func timePtr(d *localtime.DateTime) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
