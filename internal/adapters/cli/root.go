package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/infrastructure/config"
)

// rootOptions carries global flags and the application built from them
type rootOptions struct {
	configPath  string
	catalogPath string
	logLevel    string
	verbose     bool
	noColor     bool

	app *application
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "factory-planner",
		Short: "Factory Planner - resolve production chains and size conveyance",
		Long: `Factory Planner resolves a chosen set of recipes into a production graph.
Each recipe is matched with the producers, natural resources or external feeds
that supply its ingredients, grouped into floors, and optionally sized for
belts and pipes.

Examples:
  factory-planner parse '"Recipe_IronPlate_C@100#Desc_ConstructorMk1_C": "2"'
  factory-planner solve plan.txt
  factory-planner solve plan.txt --external Desc_IronIngot_C=30 --transport
  factory-planner transport Desc_IronPlate_C 80 3
  factory-planner catalog list
  factory-planner config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			app, err := newApplication(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.app = app
			cmd.SetContext(common.WithLogger(cmd.Context(), app.logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.app == nil {
				return nil
			}
			return opts.app.flush()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to config file (default: planner.yaml in ., ./configs or ~/.factory-planner)")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "",
		"Path to a YAML or JSON recipe catalog (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"Disable styled output")

	// Add command groups
	rootCmd.AddCommand(newParseCommand(opts))
	rootCmd.AddCommand(newSolveCommand(opts))
	rootCmd.AddCommand(newTransportCommand(opts))
	rootCmd.AddCommand(newCatalogCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// loadConfig reads configuration and applies flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	return run(ctx, NewRootCommand(), os.Args[1:], os.Stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(stderr, renderError(err))
		}
		return exitCode(err)
	}
	return 0
}
