package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/shift"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// ShiftHandler maneja los endpoints de turnos.
type ShiftHandler struct {
	uc  *shift.UseCase
	log *logger.Logger
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *shift.UseCase, log *logger.Logger) *ShiftHandler {
	return &ShiftHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear turno
// @Description  Crea un turno para un trabajador del restaurante indicado. Estado por defecto SCHEDULED.
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateShiftRequest  true  "Datos del turno"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/create [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.CreateShift(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewShiftResponse(out))
}

// CreateRecurring godoc
// @Summary      Crear turnos recurrentes
// @Description  Expande una regla RRULE desde startTime y guarda todas las ocurrencias en una transacción.
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateRecurringShiftsRequest  true  "Plantilla y regla"
// @Success      201   {array}   dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/recurring [post]
func (h *ShiftHandler) CreateRecurring(c *fiber.Ctx) error {
	var in dto.CreateRecurringShiftsRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	list, err := h.uc.CreateRecurringShifts(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewShiftResponses(list))
}

// Update godoc
// @Summary      Actualizar turno
// @Description  Actualización parcial: solo se modifican los campos presentes en el cuerpo.
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        shiftId  path      string                  true  "ID del turno"
// @Param        body     body      dto.UpdateShiftRequest  true  "Campos a modificar"
// @Success      200      {object}  dto.ShiftResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShiftRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.UpdateShift(c.Context(), c.Params("shiftId"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}

// GetByID godoc
// @Summary      Obtener turno
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId  path      string  true  "ID del turno"
// @Success      200      {object}  dto.ShiftResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId} [get]
func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindShiftByID(c.Context(), c.Params("shiftId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}

// ListByRestaurant godoc
// @Summary      Turnos de un restaurante
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Success      200           {array}   dto.ShiftResponse
// @Router       /api/shifts/restaurant/{restaurantId} [get]
func (h *ShiftHandler) ListByRestaurant(c *fiber.Ctx) error {
	list, err := h.uc.FindShiftsByRestaurantID(c.Context(), c.Params("restaurantId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponses(list))
}

// ListByWorker godoc
// @Summary      Turnos de un trabajador
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {array}   dto.ShiftResponse
// @Router       /api/shifts/worker/{workerId} [get]
func (h *ShiftHandler) ListByWorker(c *fiber.Ctx) error {
	list, err := h.uc.FindShiftsByWorkerID(c.Context(), c.Params("workerId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponses(list))
}

// ListByWorkerAndRange godoc
// @Summary      Turnos de un trabajador contenidos en una ventana
// @Description  Devuelve los turnos con startTime >= inicio y endTime <= fin (instantes locales sin zona).
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        workerId   path      string  true  "ID del trabajador"
// @Param        startTime  query     string  true  "Inicio (2006-01-02T15:04:05)"
// @Param        endTime    query     string  true  "Fin (2006-01-02T15:04:05)"
// @Success      200        {array}   dto.ShiftResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/shifts/worker/{workerId}/date-range [get]
func (h *ShiftHandler) ListByWorkerAndRange(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	list, err := h.uc.FindShiftsByWorkerIDAndDateRange(c.Context(), c.Params("workerId"), start, end)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponses(list))
}

// ListByRestaurantAndRange godoc
// @Summary      Turnos de un restaurante contenidos en una ventana
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Param        startTime     query     string  true  "Inicio (2006-01-02T15:04:05)"
// @Param        endTime       query     string  true  "Fin (2006-01-02T15:04:05)"
// @Success      200           {array}   dto.ShiftResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /api/shifts/restaurant/{restaurantId}/date-range [get]
func (h *ShiftHandler) ListByRestaurantAndRange(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	list, err := h.uc.FindShiftsByRestaurantIDAndDateRange(c.Context(), c.Params("restaurantId"), start, end)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponses(list))
}

// Delete godoc
// @Summary      Eliminar turno
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId  path      string  true  "ID del turno"
// @Success      200      {object}  dto.ApiResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteShift(c.Context(), c.Params("shiftId")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ApiResponse{Message: "Turno eliminado", Status: true})
}

// CheckIn godoc
// @Summary      Registrar entrada
// @Description  SCHEDULED → CHECKED_IN. El trabajador debe ser el asignado al turno.
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId   path      string  true  "ID del turno"
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {object}  dto.ShiftResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId}/check-in/{workerId} [put]
func (h *ShiftHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckInShift(c.Context(), c.Params("shiftId"), c.Params("workerId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}

// CheckOut godoc
// @Summary      Registrar salida
// @Description  CHECKED_IN → COMPLETED. El trabajador debe ser el asignado al turno.
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId   path      string  true  "ID del turno"
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {object}  dto.ShiftResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId}/check-out/{workerId} [put]
func (h *ShiftHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOutShift(c.Context(), c.Params("shiftId"), c.Params("workerId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}

// Cancel godoc
// @Summary      Cancelar turno
// @Description  Cualquier estado salvo COMPLETED pasa a CANCELED.
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId  path      string  true  "ID del turno"
// @Success      200      {object}  dto.ShiftResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId}/cancel [put]
func (h *ShiftHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.CancelShift(c.Context(), c.Params("shiftId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}

// UpdateStatus godoc
// @Summary      Forzar estado
// @Description  Asigna el estado sin comprobar la transición. Estados: SCHEDULED, CHECKED_IN, COMPLETED, CANCELED.
// @Tags         shifts
// @Produce      json
// @Security     Bearer
// @Param        shiftId  path      string  true  "ID del turno"
// @Param        status   query     string  true  "Nuevo estado"
// @Success      200      {object}  dto.ShiftResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/shifts/{shiftId}/status [put]
func (h *ShiftHandler) UpdateStatus(c *fiber.Ctx) error {
	out, err := h.uc.UpdateShiftStatus(c.Context(), c.Params("shiftId"), c.Query("status"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewShiftResponse(out))
}
