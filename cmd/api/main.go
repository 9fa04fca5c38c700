package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/docs"
	"github.com/jhoicas/Turnos-api/internal/application/report"
	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/internal/application/shift"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	infrapdf "github.com/jhoicas/Turnos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Turnos-api/internal/interfaces/http"
	"github.com/jhoicas/Turnos-api/pkg/config"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// @title                       Turnos API
// @version                     1.0
// @description                 API de turnos de restaurante: programación, entrada/salida, cancelación y reportes.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer backend.Close()

	clock := localtime.SystemClock{}
	shiftUC := shift.NewUseCase(
		backend.Shifts, backend.Workers, backend.Restaurants, backend.Tx, clock,
		shift.Options{
			RecurringMaxOccurrences: cfg.Shifts.RecurringMaxOccurrences,
			RecurringHorizonDays:    cfg.Shifts.RecurringHorizonDays,
		},
		log,
	)
	workerUC := worker.NewUseCase(backend.Workers, backend.Restaurants, worker.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clock, log)
	restaurantUC := restaurant.NewUseCase(backend.Restaurants, clock)

	// PDF: planilla de turnos por restaurante
	pdfGenerator := infrapdf.NewMarotoRosterGenerator()
	reportUC := report.NewUseCase(backend.Restaurants, backend.Shifts, backend.Timesheets, pdfGenerator, clock)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": backend.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ShiftUC:      shiftUC,
		WorkerUC:     workerUC,
		RestaurantUC: restaurantUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
