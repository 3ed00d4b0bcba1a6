package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// newCatalogCommand creates the catalog command with subcommands
func newCatalogCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the recipe and building catalog",
		Long: `Inspect the recipe and building catalog used to validate recipe lines.

The built-in catalog is used unless --catalog or catalog.path points to a
YAML or JSON file.

Examples:
  factory-planner catalog list
  factory-planner catalog list --buildings
  factory-planner catalog list --catalog ./my-catalog.yaml`,
	}

	cmd.AddCommand(newCatalogListCommand(opts))

	return cmd
}

// newCatalogListCommand creates the catalog list subcommand
func newCatalogListCommand(opts *rootOptions) *cobra.Command {
	var buildings bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog recipes or buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if buildings {
				return writeBuildings(cmd.OutOrStdout(), opts.app.catalog.Buildings())
			}
			return writeRecipes(cmd.OutOrStdout(), opts.app.catalog.Recipes())
		},
	}

	cmd.Flags().BoolVar(&buildings, "buildings", false, "List buildings instead of recipes")

	return cmd
}

func writeRecipes(out io.Writer, recipes []production.Recipe) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECIPE\tBUILDINGS\tINGREDIENTS\tPRODUCTS")
	fmt.Fprintln(w, "------\t---------\t-----------\t--------")
	for _, r := range recipes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Name,
			strings.Join(r.Buildings, ","),
			formatRates(r.Ingredients),
			formatRates(r.Products),
		)
	}
	return w.Flush()
}

func writeBuildings(out io.Writer, buildings []production.Building) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUILDING\tNAME\tPOWER (MW)")
	fmt.Fprintln(w, "--------\t----\t----------")
	for _, b := range buildings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.DisplayName, formatAmount(b.PowerMW))
	}
	return w.Flush()
}

// formatRates renders rates as "Item amount" pairs
func formatRates(rates []production.ItemRate) string {
	if len(rates) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(rates))
	for _, r := range rates {
		parts = append(parts, fmt.Sprintf("%s %s", r.Item, formatAmount(r.Amount)))
	}
	return strings.Join(parts, ", ")
}
