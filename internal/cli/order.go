package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"boxful-client/internal/domain"
	"boxful-client/internal/history"
	"boxful-client/internal/services"
	"boxful-client/internal/wizard"

	"github.com/spf13/cobra"
)

var (
	draftPath string
	dryRun    bool
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Create and inspect shipping orders",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order from a YAML draft",
	Long: `Create an order from a YAML draft holding the pickup and recipient
fields and a products list. The draft is validated step by step before it
is sent. With --dry-run the request payload is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(draftPath)
		if err != nil {
			return fmt.Errorf("open draft: %w", err)
		}
		draft, err := readDraft(f)
		f.Close()
		if err != nil {
			return err
		}

		w := wizard.New(nil)
		if err := draft.fill(w); err != nil {
			return fail(services.OrderFailureNotice(err), err)
		}

		return withApp(cmd.Context(), func(a *app) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Peso total: %.2f lbs  Subtotal: $%.2f\n", w.TotalWeight(), w.Subtotal())

			if dryRun {
				req, err := a.orders.Prepare(cmd.Context(), w)
				if err != nil {
					return fail(services.OrderFailureNotice(err), err)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(req)
			}

			order, err := a.orders.Submit(cmd.Context(), w)
			if err != nil {
				return fail(services.OrderFailureNotice(err), err)
			}
			fmt.Fprintln(out, services.OrderCreatedNotice(order))
			return nil
		})
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			o, err := a.client.Order(cmd.Context(), args[0])
			if err != nil {
				return fail(services.HistoryFailureNotice(err), err)
			}
			printOrder(cmd, o)
			return nil
		})
	},
}

func printOrder(cmd *cobra.Command, o domain.Order) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Orden %s  %s\n", o.ID, o.Status.Label())
	fmt.Fprintf(out, "Destinatario: %s %s <%s> %s\n", o.FirstName, o.LastName, o.Email, o.Phone)
	fmt.Fprintf(out, "Recolección: %s\n", o.PickupAddress)
	fmt.Fprintf(out, "Destino: %s, %s, %s\n", o.DestinationAddress, o.Municipality, o.Department)
	fmt.Fprintf(out, "Referencia: %s\n", o.ReferencePoint)
	fmt.Fprintf(out, "Creada: %s  Programada: %s\n", history.FormatDate(o.CreatedAt), history.FormatDate(o.EstimatedDate))
	fmt.Fprintf(out, "Productos: %s\n", history.ProductsSummary(o.Products))
	fmt.Fprintf(out, "Peso total: %.2f lbs\n", o.TotalWeight())
}

func init() {
	orderCreateCmd.Flags().StringVarP(&draftPath, "file", "f", "", "YAML draft file")
	orderCreateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the request instead of sending it")
	_ = orderCreateCmd.MarkFlagRequired("file")

	orderCmd.AddCommand(orderCreateCmd, orderShowCmd)
	rootCmd.AddCommand(orderCmd)
}
