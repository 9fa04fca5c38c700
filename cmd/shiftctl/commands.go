package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/internal/application/worker"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/seed"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/storage"
	"github.com/jhoicas/Turnos-api/pkg/config"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
	"github.com/jhoicas/Turnos-api/pkg/localtime"
)

func migrateCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes en PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfg.Storage.Driver != config.StoragePostgres {
				return fmt.Errorf("migrate requiere STORAGE_DRIVER=postgres (actual %q)", app.cfg.Storage.Driver)
			}
			pool, err := postgres.NewPool(app.ctx, app.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			if err := postgres.Migrate(app.ctx, pool, app.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migraciones aplicadas")
			return nil
		},
	}
}

func seedCmd(app *cliApp) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga restaurantes y trabajadores desde un fixture YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := seed.LoadFromPath(file)
			if err != nil {
				return err
			}
			backend, err := storage.Open(app.ctx, *app.cfg, app.log)
			if err != nil {
				return err
			}
			defer backend.Close()

			clock := localtime.SystemClock{}
			restaurantUC := restaurant.NewUseCase(backend.Restaurants, clock)
			workerUC := worker.NewUseCase(backend.Workers, backend.Restaurants, worker.JWTConfig{
				Secret:     app.cfg.JWT.Secret,
				ExpMinutes: app.cfg.JWT.Expiration,
				Issuer:     app.cfg.JWT.Issuer,
			}, clock, app.log)

			res, err := seed.Apply(app.ctx, fx, restaurantUC, workerUC, app.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restaurantes creados: %d, trabajadores creados: %d, omitidos: %d\n",
				res.RestaurantsCreated, res.WorkersCreated, res.WorkersSkipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Ruta del fixture YAML")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func tokenCmd(app *cliApp) *cobra.Command {
	var (
		subject      string
		role         string
		restaurantID string
		minutes      int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET (p. ej. para un administrador)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no configurado")
			}
			if role != jwt.RoleAdmin && role != jwt.RoleWorker {
				return fmt.Errorf("rol inválido %q (admin | worker)", role)
			}
			if minutes <= 0 {
				minutes = app.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(app.cfg.JWT.Secret, subject, restaurantID, role, app.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "ID del sujeto (admin o trabajador)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleAdmin, "Rol: admin | worker")
	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "ID del restaurante (opcional)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
