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
	"github.com/jhoicas/Inventario-conciliacion/internal/domain/entity"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Historiales de un material",
	Long:  "Compras, producción y lotes de un material, con el mismo orden y tope que la API.",
}

func materialArg(cmd *cobra.Command, args []string) entity.MaterialRef {
	code, _ := cmd.Flags().GetString("code")
	return entity.MaterialRef{ID: args[0], Code: code}
}

// -- history procurement --

var historyProcurementCmd = &cobra.Command{
	Use:   "procurement <material-id>",
	Short: "Historial de compras",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		m := materialArg(cmd, args)
		items, err := svc.History.Procurement.Load(ctx, m)
		if err != nil {
			return eris.Wrap(err, "history procurement")
		}
		out := dto.ProcurementItemsFromEntity(items)
		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, out)
		}
		if len(out) == 0 {
			fmt.Fprintln(os.Stderr, "Sin compras para el material.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FECHA\tORDEN\tSEC\tPROVEEDOR\tCANTIDAD\tPRECIO\tTOTAL\tMONEDA\tESTADO")
		for _, it := range out {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				day(it.EffectiveDate), it.OrderCode, it.ItemSequence, orDash(it.SupplierName),
				it.Quantity, it.UnitPrice, it.Total, orDash(it.Currency), orDash(it.ItemStatus))
		}
		return w.Flush()
	},
}

// -- history production --

var historyProductionCmd = &cobra.Command{
	Use:   "production <material-id>",
	Short: "Historial de producción",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		items, err := svc.History.Production.Load(ctx, materialArg(cmd, args))
		if err != nil {
			return eris.Wrap(err, "history production")
		}
		out := dto.ProductionItemsFromEntity(items)
		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, out)
		}
		if len(out) == 0 {
			fmt.Fprintln(os.Stderr, "Sin movimientos de producción para el material.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FECHA\tORDEN DE TRABAJO\tCANTIDAD\tCATEGORÍA\tESTADO")
		for _, it := range out {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				day(it.Timestamp), orDash(it.WorkOrderCode), it.Quantity, it.Category, orDash(it.Status))
		}
		return w.Flush()
	},
}

// -- history lots --

var historyLotsCmd = &cobra.Command{
	Use:   "lots <material-id>",
	Short: "Lotes en orden FIFO",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		lots, err := svc.History.Lots.Load(ctx, materialArg(cmd, args))
		if err != nil {
			return eris.Wrap(err, "history lots")
		}
		out := dto.LotsFromEntity(lots)
		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, out)
		}
		if len(out) == 0 {
			fmt.Fprintln(os.Stderr, "Sin lotes para el material.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FIFO\tLOTE\tFECHA\tLOTE PROVEEDOR\tVENCE\tSALDO\tESTADO")
		for _, l := range out {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				l.FIFOOrder, l.LotNumber, day(l.LotDate), l.SupplierLotCode, day(l.ExpiryDate), l.Balance, l.Status)
		}
		return w.Flush()
	},
}

// -- history report --

var historyReportCmd = &cobra.Command{
	Use:   "report <material-id>",
	Short: "Informe combinado con resumen por moneda",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		m := materialArg(cmd, args)
		rep, err := svc.History.Report(ctx, m)
		if err != nil && len(rep.Errors) == 3 {
			return eris.Wrap(err, "history report")
		}
		if jsonOutput(cmd) {
			return writeJSON(os.Stdout, dto.MaterialReportResponse{
				Material:    dto.NewMaterialResponse(m),
				Procurement: dto.ProcurementItemsFromEntity(rep.Procurement),
				Production:  dto.ProductionItemsFromEntity(rep.Production),
				Lots:        dto.LotsFromEntity(rep.Lots),
				Summary:     dto.CurrencySummariesFromDomain(rep.Summary),
				Errors:      rep.Errors,
			})
		}

		fmt.Printf("Material:    %s\n", m.Key())
		fmt.Printf("Compras:     %d\n", len(rep.Procurement))
		fmt.Printf("Producción:  %d\n", len(rep.Production))
		fmt.Printf("Lotes:       %d\n", len(rep.Lots))
		if len(rep.Summary) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MONEDA\tLÍNEAS\tCANTIDAD\tIMPORTE\tPRECIO MEDIO")
			for _, s := range rep.Summary {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
					orDash(s.Currency), s.Lines, s.TotalQuantity, s.TotalAmount, s.AverageUnitPrice.StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
		for channel, msg := range rep.Errors {
			fmt.Fprintf(os.Stderr, "error en %s: %s\n", channel, msg)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{historyProcurementCmd, historyProductionCmd, historyLotsCmd, historyReportCmd} {
		c.Flags().String("code", "", "código del material cuando difiere del id")
		historyCmd.AddCommand(c)
	}
	rootCmd.AddCommand(historyCmd)
}
