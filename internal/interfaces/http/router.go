package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Turnos-api/internal/application/report"
	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/internal/application/shift"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	AppName      string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp crea la aplicación Fiber con el manejador de errores y el recover.
// Immutable: los parámetros de ruta se guardan en entidades y no deben apuntar al buffer de fasthttp.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Immutable:    true,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ShiftUC      *shift.UseCase
	WorkerUC     *worker.UseCase
	RestaurantUC *restaurant.UseCase
	ReportUC     *report.UseCase
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
// Las rutas con segmento literal van antes que /:id para que Fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	workerHandler := NewWorkerHandler(deps.WorkerUC, log)

	// Login (público)
	api.Post("/workers/login", workerHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(jwt.RoleAdmin)

	// Restaurants
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC, log)
	restaurants := protected.Group("/restaurants")
	restaurants.Post("/", admin, restaurantHandler.Create)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:restaurantId", restaurantHandler.GetByID)

	// Workers
	workers := protected.Group("/workers")
	workers.Post("/create", admin, workerHandler.Create)
	workers.Get("/restaurant/:restaurantId", workerHandler.ListByRestaurant)
	workers.Put("/toggle-status/:workerId", admin, workerHandler.ToggleStatus)
	workers.Get("/:workerId", workerHandler.GetByID)
	workers.Put("/:workerId", admin, workerHandler.Update)
	workers.Delete("/:workerId", admin, workerHandler.Delete)

	// Shifts
	shiftHandler := NewShiftHandler(deps.ShiftUC, log)
	shifts := protected.Group("/shifts")
	shifts.Post("/create", admin, shiftHandler.Create)
	shifts.Post("/recurring", admin, shiftHandler.CreateRecurring)
	shifts.Get("/restaurant/:restaurantId/date-range", shiftHandler.ListByRestaurantAndRange)
	shifts.Get("/restaurant/:restaurantId", shiftHandler.ListByRestaurant)
	shifts.Get("/worker/:workerId/date-range", shiftHandler.ListByWorkerAndRange)
	shifts.Get("/worker/:workerId", shiftHandler.ListByWorker)
	shifts.Put("/:shiftId/check-in/:workerId", RequireSelfOrAdmin("workerId"), shiftHandler.CheckIn)
	shifts.Put("/:shiftId/check-out/:workerId", RequireSelfOrAdmin("workerId"), shiftHandler.CheckOut)
	shifts.Put("/:shiftId/cancel", admin, shiftHandler.Cancel)
	shifts.Put("/:shiftId/status", admin, shiftHandler.UpdateStatus)
	shifts.Get("/:shiftId", shiftHandler.GetByID)
	shifts.Put("/:shiftId", admin, shiftHandler.Update)
	shifts.Delete("/:shiftId", admin, shiftHandler.Delete)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, log)
	reports := protected.Group("/reports", admin)
	reports.Get("/restaurant/:restaurantId/timesheet", reportHandler.Timesheet)
	reports.Get("/restaurant/:restaurantId/roster.pdf", reportHandler.RosterPDF)
}
