package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner-go/internal/application/production/queries"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
)

// newParseCommand creates the parse command
func newParseCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse LINE...",
		Short: "Validate recipe lines against the catalog",
		Long: `Parse each argument as a recipe line and print the recipe, building and
instance count it describes, followed by its canonical form.

Example:
  factory-planner parse '"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "2"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RECIPE\tBUILDING\tCOUNT\tCANONICAL")
			fmt.Fprintln(w, "------\t--------\t-----\t---------")

			var first error
			failed := 0
			for _, line := range args {
				resp, err := opts.app.mediator.Send(cmd.Context(), &queries.ParseRecipeQuery{Line: line})
				if err != nil {
					if first == nil {
						first = err
					}
					failed++
					fmt.Fprintf(w, "%s\t\t\t\n", renderError(err))
					continue
				}
				recipe := resp.(*queries.ParseRecipeResponse).Recipe
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					recipe.Name,
					recipe.Building,
					formatAmount(recipe.Count),
					services.FormatRecipeString(recipe, services.DefaultEfficiency),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return &reportedError{failed: failed, total: len(args), cause: first}
			}
			return nil
		},
	}

	return cmd
}
