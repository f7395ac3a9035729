package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Indusoptima/plotsync-sub001/pkg/errors"
	planio "github.com/Indusoptima/plotsync-sub001/pkg/io"
	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
)

// validateCommand creates the validate command for re-checking floorplans.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [floorplan.json]",
		Short: "Re-run the multi-pass validation gate over a floorplan",
		Long: `Re-run the multi-pass validation gate over a floorplan.

The validate command loads a floorplan (produced by 'solve' or an external
tool) and runs the full five-pass gate: structural soundness, non-overlap,
envelope containment, door-graph connectivity, and code compliance. Every
pass is reported with its issues.

With --strict, warnings fail the command as well as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}

// runValidate loads the floorplan, runs the gate, and prints each pass.
func (c *CLI) runValidate(ctx context.Context, input string, strict bool) error {
	fp, err := planio.ImportFloorplan(input)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	report := runner.Validate(ctx, &fp)

	for _, pass := range report.Passes {
		errs, warns := 0, 0
		for _, issue := range pass.Issues {
			if issue.IsError() {
				errs++
			} else {
				warns++
			}
		}
		switch {
		case errs > 0:
			printError("%s: %d error(s), %d warning(s)", pass.Name, errs, warns)
		case warns > 0:
			printWarning("%s: %d warning(s)", pass.Name, warns)
		default:
			printSuccess("%s", pass.Name)
		}
		for _, issue := range pass.Issues {
			printDetail("%s", issue.String())
		}
		if pass.Corrected {
			printDetail("geometry auto-corrected")
		}
	}
	printNewline()

	if !report.FinalValid {
		return errors.New(errors.ErrCodeValidationFailed,
			"floorplan failed validation with %d error(s)", report.ErrorCount())
	}
	if strict && report.WarningCount() > 0 {
		return errors.New(errors.ErrCodeValidationFailed,
			"floorplan has %d warning(s) in strict mode", report.WarningCount())
	}
	printSuccess("Floorplan is valid")
	if report.WarningCount() > 0 {
		fmt.Println(StyleDim.Render(fmt.Sprintf("  %d warning(s)", report.WarningCount())))
	}
	return nil
}
