package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/bulk"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Operaciones masivas",
	Long:  "Mutaciones por lotes contra el backend REST, de a una unidad y con cancelación entre unidades (Ctrl+C).",
}

// -- bulk delete --

var bulkDeleteCmd = &cobra.Command{
	Use:   "delete <material-id>...",
	Short: "Borra materiales del catálogo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if svc.Deleter == nil {
			return eris.New("bulk delete: la fuente configurada es de solo lectura (SOURCE_KIND=rest requerido)")
		}

		// La primera señal pide cancelar; la unidad en curso termina.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sub := svc.Events.BulkProgress.Subscribe(0)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for p := range sub.C {
				printProgress(os.Stderr, p)
			}
		}()

		units := bulk.DeleteMaterialUnits(svc.Deleter, bulk.MaterialRefs(args), svc.Events.StockUpdates)
		final, err := svc.Bulk.Execute(ctx, units, nil)
		sub.Unsubscribe()
		<-done
		if err != nil {
			return eris.Wrap(err, "bulk delete")
		}

		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, dto.BulkProgressFromEntity(final))
		}
		printSummary(os.Stdout, final)
		if !final.FullySucceeded() {
			return eris.Errorf("bulk delete: %d errores, cancelada=%t", len(final.Errors), final.Cancelled)
		}
		return nil
	},
}

// printProgress una línea por cambio de unidad o cierre.
func printProgress(w io.Writer, p entity.BulkOperationProgress) {
	switch {
	case p.Finished:
		return
	case p.Cancelling:
		fmt.Fprintf(w, "[%d/%d] cancelando...\n", p.Completed, p.Total)
	case p.CurrentID != "":
		fmt.Fprintf(w, "[%d/%d] %s\n", p.Completed+1, p.Total, orDash(p.CurrentName))
	}
}

func printSummary(w io.Writer, p entity.BulkOperationProgress) {
	fmt.Fprintf(w, "Completadas: %d/%d  correctas: %d  omitidas: %d  errores: %d\n",
		p.Completed, p.Total, p.Succeeded, p.Skipped, len(p.Errors))
	if p.Cancelled {
		fmt.Fprintln(w, "Operación cancelada.")
	}
	for _, e := range p.Errors {
		fmt.Fprintf(w, "  %s (%s): %s\n", e.ID, orDash(e.Name), e.Message)
	}
	if p.RefreshError != "" {
		fmt.Fprintf(w, "Refresco del catálogo fallido: %s\n", p.RefreshError)
	}
}

func init() {
	bulkCmd.AddCommand(bulkDeleteCmd)
	rootCmd.AddCommand(bulkCmd)
}

