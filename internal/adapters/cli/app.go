package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/andrescamacho/factory-planner-go/internal/adapters/catalog"
	"github.com/andrescamacho/factory-planner-go/internal/adapters/metrics"
	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/application/mediator"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/commands"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/queries"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/services"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
	"github.com/andrescamacho/factory-planner-go/internal/domain/transport"
	"github.com/andrescamacho/factory-planner-go/internal/infrastructure/config"
	"github.com/andrescamacho/factory-planner-go/internal/infrastructure/logging"
)

// application holds everything a command needs once configuration is resolved
type application struct {
	cfg      *config.Config
	catalog  *production.Catalog
	logger   *slog.Logger
	mediator mediator.Mediator
	floors   *services.FloorPlanner
}

// newApplication wires catalogs, services and handlers from cfg
func newApplication(cfg *config.Config, stdout, stderr io.Writer) (*application, error) {
	logger, err := logging.NewLogger(cfg.Logging, stdout, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	tiers, err := transport.NewTierTable(cfg.Transport.BeltCapacities, cfg.Transport.PipeCapacities)
	if err != nil {
		return nil, fmt.Errorf("invalid transport tiers: %w", err)
	}

	materials := production.DefaultMaterialTable(cfg.Materials.ExtraNaturalResources, cfg.Materials.ExtraFluids)

	parser, err := services.NewCachingRecipeParser(services.NewRecipeParser(cat, cat), cfg.Catalog.ParseCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}

	capacity := transport.NewCapacityPlanner(tiers, materials)
	floors := services.NewFloorPlanner(capacity)
	solver := services.NewChainSolver(parser, cat, materials)

	commandMetrics, err := initMetrics(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	m := mediator.NewMediator()
	m.Use(common.LoggingMiddleware())
	m.Use(metrics.PrometheusMiddleware(commandMetrics))

	if err := mediator.RegisterHandler[*commands.SolveChainCommand](m, commands.NewSolveChainHandler(solver, floors)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*queries.ParseRecipeQuery](m, queries.NewParseRecipeHandler(parser)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*queries.PlanTransportQuery](m, queries.NewPlanTransportHandler(capacity)); err != nil {
		return nil, err
	}

	logger.Debug("application ready",
		"recipes", len(cat.Recipes()),
		"buildings", len(cat.Buildings()),
		"metrics", metrics.IsEnabled(),
	)

	return &application{
		cfg:      cfg,
		catalog:  cat,
		logger:   logger,
		mediator: m,
		floors:   floors,
	}, nil
}

func loadCatalog(path string) (*production.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// initMetrics sets up the registry when enabled. A nil collector disables the middleware.
func initMetrics(cfg config.MetricsConfig) (*metrics.CommandMetricsCollector, error) {
	metrics.Reset()
	if !cfg.Enabled {
		return nil, nil
	}

	metrics.InitRegistry()

	solverCollector := metrics.NewSolverMetricsCollector()
	if err := solverCollector.Register(); err != nil {
		return nil, fmt.Errorf("failed to register solver metrics: %w", err)
	}
	metrics.SetGlobalSolverCollector(solverCollector)

	commandCollector := metrics.NewCommandMetricsCollector()
	if err := commandCollector.Register(); err != nil {
		return nil, fmt.Errorf("failed to register command metrics: %w", err)
	}
	return commandCollector, nil
}

// flush writes collected metrics when a textfile path is configured
func (a *application) flush() error {
	if err := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
