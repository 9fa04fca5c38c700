package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/report"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// ReportHandler expone el reporte de horas y la planilla en PDF.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Timesheet godoc
// @Summary      Horas por trabajador
// @Description  Horas programadas y trabajadas de los turnos contenidos en la ventana. Excluye CANCELED.
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Param        startTime     query     string  true  "Inicio (2006-01-02T15:04:05)"
// @Param        endTime       query     string  true  "Fin (2006-01-02T15:04:05)"
// @Success      200           {object}  dto.TimesheetResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/reports/restaurant/{restaurantId}/timesheet [get]
func (h *ReportHandler) Timesheet(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Timesheet(c.Context(), c.Params("restaurantId"), start, end)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RosterPDF godoc
// @Summary      Planilla de turnos en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Param        startTime     query     string  true  "Inicio (2006-01-02T15:04:05)"
// @Param        endTime       query     string  true  "Fin (2006-01-02T15:04:05)"
// @Success      200           {file}    file
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/reports/restaurant/{restaurantId}/roster.pdf [get]
func (h *ReportHandler) RosterPDF(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, filename, err := h.uc.RosterPDF(c.Context(), c.Params("restaurantId"), start, end)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
