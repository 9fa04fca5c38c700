package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// WorkerHandler maneja los endpoints de trabajadores y su login.
type WorkerHandler struct {
	uc  *worker.UseCase
	log *logger.Logger
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *worker.UseCase, log *logger.Logger) *WorkerHandler {
	return &WorkerHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateWorkerRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.WorkerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/workers/create [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        workerId  path      string                   true  "ID del trabajador"
// @Param        body      body      dto.UpdateWorkerRequest  true  "Campos a modificar"
// @Success      200       {object}  dto.WorkerResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/workers/{workerId} [put]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("workerId"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener trabajador
// @Tags         workers
// @Produce      json
// @Security     Bearer
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {object}  dto.WorkerResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/workers/{workerId} [get]
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("workerId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListByRestaurant godoc
// @Summary      Trabajadores de un restaurante
// @Tags         workers
// @Produce      json
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Success      200           {array}   dto.WorkerResponse
// @Router       /api/workers/restaurant/{restaurantId} [get]
func (h *WorkerHandler) ListByRestaurant(c *fiber.Ctx) error {
	out, err := h.uc.ListByRestaurant(c.Context(), c.Params("restaurantId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar trabajador
// @Description  Falla con 409 si aún tiene turnos.
// @Tags         workers
// @Produce      json
// @Security     Bearer
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {object}  dto.ApiResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/workers/{workerId} [delete]
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("workerId")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ApiResponse{Message: "Trabajador eliminado", Status: true})
}

// ToggleStatus godoc
// @Summary      Activar/desactivar trabajador
// @Tags         workers
// @Produce      json
// @Security     Bearer
// @Param        workerId  path      string  true  "ID del trabajador"
// @Success      200       {object}  dto.WorkerResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/workers/toggle-status/{workerId} [put]
func (h *WorkerHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), c.Params("workerId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Login de trabajador
// @Description  Devuelve un JWT con rol worker.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.WorkerAuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/workers/login [post]
func (h *WorkerHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
