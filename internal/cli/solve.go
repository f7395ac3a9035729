package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	planio "github.com/Indusoptima/plotsync-sub001/pkg/io"
	"github.com/Indusoptima/plotsync-sub001/pkg/observability"
	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
)

// solveCommand creates the solve command running the full pipeline.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output     string
		timeBudget time.Duration
		pick       bool
		flags      cacheFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "solve [spec.json|spec.toml]",
		Short: "Solve a room specification into a floorplan",
		Long: `Solve a room specification into a floorplan.

The solve command reads a specification (JSON or TOML), optimizes room
placement inside the envelope, synthesizes walls, places doors and windows
with resolved swing arcs, and runs the multi-pass validation gate. The output
is a floorplan.json file that can be re-checked with 'validate'.

A failed validation does not fail the solve: the best-known floorplan is
written together with its report. Only an infeasible specification aborts.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], opts, output, timeBudget, pick, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.floorplan.json)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 selects the default)")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 0, "annealing budget (0 scales by typology)")
	cmd.Flags().IntVar(&opts.Variations, "variations", 0, "independent layouts to produce")
	cmd.Flags().DurationVar(&timeBudget, "time-budget", 0, "wall-clock bound; expiry returns the best layout so far")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and re-solve")
	cmd.Flags().BoolVar(&pick, "pick", false, "interactively choose which variation to export")
	flags.register(cmd)

	return cmd
}

// runSolve loads the specification, runs the pipeline, and writes output.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, output string, timeBudget time.Duration, pick bool, flags cacheFlags) error {
	spec, err := planio.ImportSpec(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.TimeBudget = timeBudget

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %d rooms...", len(spec.Rooms)))
	spinner.Start()
	observability.SetSolverHooks(newSolveProgress(spinner))
	defer observability.Reset()

	result, err := runner.Solve(ctx, &spec, opts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	fp := result.Floorplan
	report := result.Report
	if pick && len(result.Variations) > 1 {
		model := NewVariationListModel(result.Variations)
		out, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("variation picker: %w", err)
		}
		if sel := out.(VariationListModel).Selected; sel != nil {
			fp = sel.Floorplan
			report = sel.Report
		}
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".floorplan.json"
	}
	if err := planio.ExportFloorplan(fp, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if result.TimedOut {
		printWarning("Time budget hit; wrote the best layout found so far")
	} else {
		printSuccess("Solve complete")
	}
	printFile(outputPath)
	printStats(len(fp.Layout.Rooms), len(fp.Walls), len(fp.Openings), result.CacheInfo.Hit)
	printReport(report)
	printDetail("typology: %s · cost: %.4f · %s", result.Stats.Typology,
		result.Breakdown.Total, result.Stats.SolveTime.Round(time.Millisecond))
	printNewline()
	printNextStep("Re-check", "plotsync validate "+outputPath)

	return nil
}
