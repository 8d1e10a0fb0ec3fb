package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-conciliacion/internal/bootstrap"
	"github.com/jhoicas/Inventario-conciliacion/pkg/config"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
	svc *bootstrap.Services
)

var rootCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Conciliación de historiales de inventario",
	Long:  "Consulta historiales de compras, producción y lotes por material, estados efectivos por proveedor y ejecuta borrados masivos contra el backend de registro.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		cfg = c

		// Los logs van a stderr; stdout queda para la salida del comando.
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

		s, err := bootstrap.Wire(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		svc = s
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if svc != nil {
			svc.Close()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "salida en JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
