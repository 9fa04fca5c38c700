package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Turnos-api/pkg/config"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// cliApp dependencias compartidas por los subcomandos.
type cliApp struct {
	cfg *config.Config
	log *logger.Logger
	ctx context.Context
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &cliApp{ctx: context.Background()}

	rootCmd := &cobra.Command{
		Use:          "shiftctl",
		Short:        "Herramientas de operación de Turnos API",
		Long:         `Aplica migraciones, carga fixtures de restaurantes y trabajadores y emite tokens de servicio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.App.LogLevel)
			return nil
		},
	}

	rootCmd.AddCommand(migrateCmd(app))
	rootCmd.AddCommand(seedCmd(app))
	rootCmd.AddCommand(tokenCmd(app))
	return rootCmd
}
