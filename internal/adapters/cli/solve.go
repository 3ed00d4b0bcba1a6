package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/factory-planner-go/internal/application/common"
	"github.com/andrescamacho/factory-planner-go/internal/application/production/commands"
	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// solveOutcome is the result of solving one recipe file
type solveOutcome struct {
	path     string
	response *commands.SolveChainResponse
	err      error
}

// newSolveCommand creates the solve command
func newSolveCommand(opts *rootOptions) *cobra.Command {
	var (
		externals     []string
		showTransport bool
		output        string
		parallelism   int
	)

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Resolve recipe files into production floors",
		Long: `Resolve every recipe of each file into a production graph.

A recipe file holds one recipe per line in the form
  "Recipe_Name_C@EFFICIENCY#Desc_Building_C": "COUNT",
Blank lines, lone braces and lines starting with # or // are ignored.

Ingredients are drawn from producers on lower floors first, then natural
resources, then the external feeds given with --external. Files are solved
independently and reported in the order given.

Examples:
  factory-planner solve plan.txt
  factory-planner solve plan.txt --external Desc_IronIngot_C=30
  factory-planner solve a.txt b.txt --transport
  factory-planner solve plan.txt --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unsupported output %q: expected text or json", output)
			}
			inputs, err := parseExternalInputs(externals)
			if err != nil {
				return err
			}

			outcomes, err := solveFiles(cmd.Context(), opts.app, args, inputs, parallelism)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				err = writeSolveJSON(out, outcomes)
			} else {
				formatter := NewFloorFormatter(out, opts.app.floors, !opts.noColor, showTransport)
				writeSolveText(out, formatter, outcomes)
			}
			if err != nil {
				return err
			}

			return failureOf(outcomes)
		},
	}

	cmd.Flags().StringArrayVarP(&externals, "external", "e", nil,
		"External feed as item=amount per minute (repeatable)")
	cmd.Flags().BoolVarP(&showTransport, "transport", "t", false,
		"Size belts and pipes for every product")
	cmd.Flags().StringVarP(&output, "output", "o", "text",
		"Output format: text or json")
	cmd.Flags().IntVar(&parallelism, "parallel", runtime.GOMAXPROCS(0),
		"Maximum number of files solved at once")

	return cmd
}

// solveFiles solves every file concurrently, preserving argument order in the result.
// Solve failures are kept per file; only unreadable files abort the run.
func solveFiles(
	ctx context.Context,
	app *application,
	paths []string,
	inputs []production.ExternalInput,
	parallelism int,
) ([]solveOutcome, error) {
	outcomes := make([]solveOutcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, path := range paths {
		g.Go(func() error {
			lines, err := readRecipeFile(path)
			if err != nil {
				return err
			}

			fileCtx := common.WithLogger(gctx, app.logger.With("file", path))
			resp, err := app.mediator.Send(fileCtx, &commands.SolveChainCommand{
				Source:         path,
				Lines:          lines,
				ExternalInputs: inputs,
			})

			outcomes[i] = solveOutcome{path: path, err: err}
			if err == nil {
				solved, ok := resp.(*commands.SolveChainResponse)
				if !ok {
					return fmt.Errorf("unexpected response type %T", resp)
				}
				outcomes[i].response = solved
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func writeSolveText(out io.Writer, formatter *FloorFormatter, outcomes []solveOutcome) {
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if o.err != nil {
			fmt.Fprintf(out, "%s\n%s\n", o.path, renderError(o.err))
			continue
		}
		fmt.Fprintln(out, formatter.FormatSummary(o.path, o.response.Nodes, o.response.Floors))
		fmt.Fprint(out, formatter.FormatFloors(o.response.Floors))
	}
}

// failureOf reports how many files failed, carrying the first failure for the exit code
func failureOf(outcomes []solveOutcome) error {
	var first error
	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			if first == nil {
				first = o.err
			}
		}
	}
	if failed == 0 {
		return nil
	}
	return &reportedError{failed: failed, total: len(outcomes), cause: first}
}

// JSON output

type solveResultDTO struct {
	File    string         `json:"file"`
	SolveID string         `json:"solve_id,omitempty"`
	Error   *solveErrorDTO `json:"error,omitempty"`
	Floors  []floorDTO     `json:"floors,omitempty"`
}

type solveErrorDTO struct {
	Kind    string              `json:"kind"`
	Message string              `json:"message"`
	Missing map[string][]string `json:"missing,omitempty"`
	Needs   []string            `json:"needs,omitempty"`
}

type floorDTO struct {
	Number int       `json:"number"`
	Nodes  []nodeDTO `json:"nodes"`
}

type nodeDTO struct {
	Recipe            string                `json:"recipe"`
	Building          string                `json:"building"`
	Count             float64               `json:"count"`
	Ingredients       []production.ItemRate `json:"ingredients"`
	Products          []production.ItemRate `json:"products"`
	Inputs            []linkDTO             `json:"inputs"`
	Outputs           []linkDTO             `json:"outputs"`
	AvailableProducts []production.ItemRate `json:"available_products"`
	FullyConsumed     bool                  `json:"fully_consumed"`
}

type linkDTO struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Sink     string  `json:"sink"`
	Material string  `json:"material"`
	Amount   float64 `json:"amount"`
}

func writeSolveJSON(out io.Writer, outcomes []solveOutcome) error {
	results := make([]solveResultDTO, 0, len(outcomes))
	for _, o := range outcomes {
		result := solveResultDTO{File: o.path}
		if o.err != nil {
			result.Error = toErrorDTO(o.err)
		} else {
			result.SolveID = o.response.SolveID
			result.Floors = toFloorDTOs(o.response)
		}
		results = append(results, result)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func toErrorDTO(err error) *solveErrorDTO {
	dto := &solveErrorDTO{
		Kind:    string(production.KindOf(err)),
		Message: err.Error(),
	}
	var chainErr *production.RecipeChainError
	if errors.As(err, &chainErr) {
		dto.Missing = chainErr.Missing
		dto.Needs = chainErr.MissingMaterials()
	}
	return dto
}

func toFloorDTOs(resp *commands.SolveChainResponse) []floorDTO {
	floors := make([]floorDTO, 0, len(resp.Floors))
	for _, fl := range resp.Floors {
		nodes := make([]nodeDTO, 0, len(fl.Nodes))
		for _, n := range fl.Nodes {
			nodes = append(nodes, nodeDTO{
				Recipe:            n.Name(),
				Building:          n.Recipe.Building,
				Count:             n.Recipe.Count,
				Ingredients:       n.Ingredients,
				Products:          n.Products,
				Inputs:            toLinkDTOs(n.Inputs),
				Outputs:           toLinkDTOs(n.Outputs),
				AvailableProducts: n.AvailableProducts,
				FullyConsumed:     n.FullyConsumed,
			})
		}
		floors = append(floors, floorDTO{Number: fl.Number, Nodes: nodes})
	}
	return floors
}

func toLinkDTOs(links []production.MaterialLink) []linkDTO {
	result := make([]linkDTO, 0, len(links))
	for _, l := range links {
		result = append(result, linkDTO{
			ID:       l.ID(),
			Source:   l.Source,
			Sink:     l.Sink,
			Material: l.Material,
			Amount:   l.Amount,
		})
	}
	return result
}
