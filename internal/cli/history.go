package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"boxful-client/internal/api"
	"boxful-client/internal/domain"
	"boxful-client/internal/history"
	"boxful-client/internal/services"

	"github.com/spf13/cobra"
)

var historyFlags struct {
	from, to    string
	page, limit int
	out         string
	selected    []string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review, export and print your shipment history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders, one page at a time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(v *services.HistoryView) error {
			orders, meta := v.Page(historyFlags.page, historyFlags.limit)
			out := cmd.OutOrStdout()

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOMBRE\tDEPARTAMENTO\tMUNICIPIO\tPRODUCTOS\tPESO\tESTADO\tFECHA")
			for _, o := range orders {
				var when string
				if d, ok := o.EffectiveDate(); ok {
					when = history.FormatDate(&d)
				}
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%d\t%.1f\t%s\t%s\n",
					o.ID, o.FirstName, o.LastName, o.Department, o.Municipality,
					len(o.Products), o.TotalWeight(), o.Status.Label(), when)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Página %d de %d (%d órdenes) · %s\n",
				meta.Page, max(meta.TotalPages, 1), meta.Total, v.Range().Describe())
			return nil
		})
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count your orders by status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(v *services.HistoryView) error {
			st := v.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total de órdenes: %d\n", st.Total)
			for _, s := range domain.Statuses {
				fmt.Fprintf(out, "%s: %d\n", s.Label(), st.Count(s))
			}
			fmt.Fprintf(out, "Total de productos: %d\n", st.Products)
			fmt.Fprintf(out, "Peso total: %.2f lbs\n", st.WeightLbs)
			return nil
		})
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export orders to CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(v *services.HistoryView) error {
			var buf bytes.Buffer
			name, err := v.WriteCSV(&buf)
			if err != nil {
				return err
			}
			path := historyFlags.out
			if path == "" {
				path = name
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			rows, _ := v.Export()
			fmt.Fprintf(cmd.OutOrStdout(), "%d órdenes exportadas a %s\n", len(rows), path)
			return nil
		})
	},
}

var historyPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Serve a printable report on a local address",
	Long: `Serve a printable HTML report of your orders on a local address.
The server stops after the report has been opened once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(cmd, func(v *services.HistoryView) error {
			srv, err := api.NewReportServer(cfg.Report.Addr, v)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Abre %s/report para imprimir (CSV en %s/report.csv)\n", srv.URL(), srv.URL())
			return srv.Serve(cmd.Context())
		})
	},
}

// withHistory loads the history, applies the date and selection flags and
// hands the view to fn.
func withHistory(cmd *cobra.Command, fn func(*services.HistoryView) error) error {
	r, err := parseRange(historyFlags.from, historyFlags.to)
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), func(a *app) error {
		v := a.history
		if err := v.Load(cmd.Context()); err != nil {
			return fail(services.HistoryFailureNotice(err), err)
		}
		if err := v.SetRange(r); err != nil {
			return fail(services.HistoryFailureNotice(err), err)
		}
		if len(historyFlags.selected) > 0 {
			v.Select(historyFlags.selected)
		}
		return fn(v)
	})
}

func parseRange(from, to string) (domain.DateRange, error) {
	var r domain.DateRange
	for _, b := range []struct {
		flag, raw string
		dst       **time.Time
	}{
		{"--from", from, &r.Start},
		{"--to", to, &r.End},
	} {
		raw := strings.TrimSpace(b.raw)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", b.flag, err)
		}
		*b.dst = &t
	}
	return r, nil
}

func init() {
	pf := historyCmd.PersistentFlags()
	pf.StringVar(&historyFlags.from, "from", "", "start date (YYYY-MM-DD)")
	pf.StringVar(&historyFlags.to, "to", "", "end date (YYYY-MM-DD), inclusive")
	pf.StringSliceVar(&historyFlags.selected, "select", nil, "order ids to export or print")

	historyListCmd.Flags().IntVar(&historyFlags.page, "page", 1, "page number")
	historyListCmd.Flags().IntVar(&historyFlags.limit, "limit", history.DefaultLimit, "orders per page")
	historyExportCmd.Flags().StringVarP(&historyFlags.out, "out", "o", "", "output file (default mis-envios-YYYY-MM-DD.csv)")

	historyCmd.AddCommand(historyListCmd, historyStatsCmd, historyExportCmd, historyPrintCmd)
	rootCmd.AddCommand(historyCmd)
}
