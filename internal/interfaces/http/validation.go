package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodifica el JSON y ejecuta las reglas validate de la estructura.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}
	return nil
}

// parseRange lee ?startTime&endTime como instantes locales sin zona.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(&q); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}
	start, err := localtime.Parse(q.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startTime: %v", domain.ErrInvalidInput, err)
	}
	end, err := localtime.Parse(q.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endTime: %v", domain.ErrInvalidInput, err)
	}
	return start, end, nil
}

// describe resume los errores del validador como "campo: regla".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
