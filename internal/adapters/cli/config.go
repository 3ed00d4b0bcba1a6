package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Factory Planner configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command-line flags (--catalog, --log-level, --verbose)
2. Environment variables (FP_* prefix, e.g. FP_CATALOG_PATH)
3. Config file (planner.yaml)
4. Default values

Example:
  factory-planner config show`,
	}

	cmd.AddCommand(newConfigShowCommand(opts))

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.app.cfg
			out := cmd.OutOrStdout()

			catalogPath := cfg.Catalog.Path
			if catalogPath == "" {
				catalogPath = "(built-in)"
			}

			fmt.Fprintln(out, "Factory Planner Configuration")
			fmt.Fprintln(out, "=============================")
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Catalog:")
			fmt.Fprintf(out, "  Path:             %s\n", catalogPath)
			fmt.Fprintf(out, "  Parse cache size: %d\n", cfg.Catalog.ParseCacheSize)
			fmt.Fprintf(out, "  Recipes:          %d\n", len(opts.app.catalog.Recipes()))
			fmt.Fprintf(out, "  Buildings:        %d\n", len(opts.app.catalog.Buildings()))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Transport:")
			fmt.Fprintf(out, "  Belts: %s\n", joinAmounts(cfg.Transport.BeltCapacities))
			fmt.Fprintf(out, "  Pipes: %s\n", joinAmounts(cfg.Transport.PipeCapacities))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Materials:")
			fmt.Fprintf(out, "  Extra natural resources: %s\n", joinOrNone(cfg.Materials.ExtraNaturalResources))
			fmt.Fprintf(out, "  Extra fluids:            %s\n", joinOrNone(cfg.Materials.ExtraFluids))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Logging:")
			fmt.Fprintf(out, "  Level:  %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output: %s\n", cfg.Logging.Output)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Metrics:")
			fmt.Fprintf(out, "  Enabled:  %t\n", cfg.Metrics.Enabled)
			if cfg.Metrics.TextfilePath != "" {
				fmt.Fprintf(out, "  Textfile: %s\n", cfg.Metrics.TextfilePath)
			}

			return nil
		},
	}

	return cmd
}

func joinAmounts(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, formatAmount(v))
	}
	return strings.Join(parts, ", ")
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
