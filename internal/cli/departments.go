package cli

import (
	"fmt"

	"boxful-client/internal/domain"

	"github.com/spf13/cobra"
)

var departmentsCmd = &cobra.Command{
	Use:   "departments [name]",
	Short: "List departments, or the municipalities of one department",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := domain.DefaultCatalog()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, d := range catalog.Departments() {
				fmt.Fprintln(out, d)
			}
			return nil
		}

		munis := catalog.Municipalities(args[0])
		if munis == nil {
			return fmt.Errorf("departamento desconocido: %q", args[0])
		}
		for _, m := range munis {
			fmt.Fprintln(out, m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(departmentsCmd)
}
