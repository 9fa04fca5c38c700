package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// errorMapping traduce errores de dominio a status y código. El orden importa:
// un error puede envolver varios sentinelas (p. ej. login: Unauthorized + WorkerNotFound).
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrWorkerNotFound, fiber.StatusNotFound, "WORKER_NOT_FOUND"},
	{domain.ErrRestaurantNotFound, fiber.StatusNotFound, "RESTAURANT_NOT_FOUND"},
	{domain.ErrShiftNotFound, fiber.StatusNotFound, "SHIFT_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAssignmentMismatch, fiber.StatusBadRequest, "ASSIGNMENT_MISMATCH"},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrWorkerMismatch, fiber.StatusForbidden, "WORKER_MISMATCH"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// writeError responde con dto.ErrorResponse. Los errores no mapeados se registran y devuelven 500.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// ErrorHandler para fiber.Config: rutas inexistentes, body demasiado grande y panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, log, err)
	}
}
