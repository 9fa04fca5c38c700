// Package storage arma los repositorios según el driver configurado (postgres | memory).
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/application/shift"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Turnos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Turnos-api/pkg/config"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// Backend repositorios listos para inyectar en los casos de uso.
type Backend struct {
	Shifts      repository.ShiftRepository
	Workers     repository.WorkerRepository
	Restaurants repository.RestaurantRepository
	Timesheets  repository.TimesheetRepository
	Tx          shift.TxRunner
	Driver      string

	close func()
}

// Close libera el pool (no-op en memoria).
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta el backend. Con postgres y AutoMigrate aplica las migraciones pendientes.
func Open(ctx context.Context, cfg config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return NewMemory(memory.NewStore()), nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Storage.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
		}
		return &Backend{
			Shifts:      postgres.NewShiftRepository(pool),
			Workers:     postgres.NewWorkerRepository(pool),
			Restaurants: postgres.NewRestaurantRepository(pool),
			Timesheets:  postgres.NewTimesheetRepository(pool),
			Tx:          postgres.NewTxRunner(pool),
			Driver:      config.StoragePostgres,
			close:       pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
	}
}

// NewMemory envuelve un store en memoria ya creado.
func NewMemory(store *memory.Store) *Backend {
	return &Backend{
		Shifts:      store.Shifts(),
		Workers:     store.Workers(),
		Restaurants: store.Restaurants(),
		Timesheets:  store.Timesheets(),
		Tx:          store,
		Driver:      config.StorageMemory,
	}
}
