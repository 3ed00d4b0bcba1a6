package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner-go/internal/application/production/queries"
)

// newTransportCommand creates the transport command
func newTransportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transport MATERIAL AMOUNT COUNT",
		Short: "Size belts or pipes for a material",
		Long: `Distribute COUNT producing instances, each yielding AMOUNT per minute of
MATERIAL, across conveyance tiers from the lowest up. Fluids use pipes,
everything else uses belts.

Example:
  factory-planner transport Desc_IronPlate_C 80 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			count, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[2], err)
			}

			resp, err := opts.app.mediator.Send(cmd.Context(), &queries.PlanTransportQuery{
				Material:          args[0],
				PerInstanceAmount: amount,
				InstanceCount:     count,
			})
			if err != nil {
				return err
			}
			plan := resp.(*queries.PlanTransportResponse)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s): %s/min x %s\n", args[0], plan.Class, formatAmount(amount), formatAmount(count))
			if !plan.Satisfied {
				fmt.Fprintln(out, "No viable configuration: one instance exceeds the highest tier")
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIER\tINSTANCES")
			fmt.Fprintln(w, "----\t---------")
			for i, n := range plan.Tiers {
				fmt.Fprintf(w, "%s\t%d\n", plan.Labels[i], n)
			}
			return w.Flush()
		},
	}

	return cmd
}
