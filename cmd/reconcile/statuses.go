package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
)

var statusesCmd = &cobra.Command{
	Use:   "statuses <supplier-id>",
	Short: "Estado efectivo de los materiales de un proveedor",
	Long:  "Resuelve el estado de cada material suministrado según STATUS_PRECEDENCE, STATUS_DEFAULT y STATUS_SUPPLIER_VETO.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		res, err := svc.Status.SupplierMaterialStatuses(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "statuses")
		}
		out := dto.SupplierStatusesFromUseCase(res)
		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, out)
		}

		fmt.Printf("Proveedor: %s (%s) estado=%s\n\n", out.SupplierName, out.SupplierID, orDash(out.SupplierStatus))
		if len(out.Materials) == 0 {
			fmt.Fprintln(os.Stderr, "El proveedor no suministra materiales.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MATERIAL\tCÓDIGO\tNOMBRE\tVÍNCULO\tEFECTIVO\tFUENTE")
		for _, m := range out.Materials {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				orDash(m.MaterialID), orDash(m.MaterialCode), orDash(m.MaterialName), orDash(m.LinkStatus), m.Status, m.StatusSource)
		}
		return w.Flush()
	},
}

func init() { rootCmd.AddCommand(statusesCmd) }
