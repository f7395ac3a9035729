package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Indusoptima/plotsync-sub001/pkg/errors"
	planio "github.com/Indusoptima/plotsync-sub001/pkg/io"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
)

// checkCommand creates the check command for specification feasibility.
func (c *CLI) checkCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check [spec.json|spec.toml]",
		Short: "Check a specification's feasibility without solving",
		Long: `Check a specification's feasibility without solving.

The check command runs the rule engine's pre-solve gates: area distribution
against the envelope (including circulation overhead) and adjacency demand
feasibility. It reports the building typology and the iteration budget a
solve would use.

Use --rules to load custom rule thresholds from a TOML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "rules", "", "rule configuration file (TOML)")

	return cmd
}

// runCheck loads the specification and reports every feasibility issue.
func (c *CLI) runCheck(input, configPath string) error {
	spec, err := planio.ImportSpec(input)
	if err != nil {
		return err
	}

	engine := rules.New(nil)
	if configPath != "" {
		cfg, err := rules.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load rules %s: %w", configPath, err)
		}
		engine = rules.New(&cfg)
	}

	areas := make(map[string]float64, len(spec.Rooms))
	for _, room := range spec.Rooms {
		areas[room.ID] = room.TargetArea
	}
	issues := engine.ValidateAreaDistribution(spec.Envelope.Area(), areas)
	issues = append(issues, engine.ValidateAdjacencyFeasibility(engine.EffectiveEdges(&spec))...)

	typology := rules.ClassifyTypology(spec.Envelope.Area(), len(spec.Rooms))
	printKeyValue("rooms", fmt.Sprintf("%d", len(spec.Rooms)))
	printKeyValue("envelope", fmt.Sprintf("%.1f × %.1f m (%.1f m²)",
		spec.Envelope.Width, spec.Envelope.Height, spec.Envelope.Area()))
	printKeyValue("typology", string(typology))
	printKeyValue("iterations", fmt.Sprintf("%d", typology.IterationBudget()))
	printNewline()

	for _, issue := range issues {
		if issue.IsError() {
			printError("%s", issue.String())
		} else {
			printWarning("%s", issue.String())
		}
	}

	if rules.CountErrors(issues) > 0 {
		return errors.New(errors.ErrCodeInfeasibleSpec,
			"specification is infeasible: %d error(s)", rules.CountErrors(issues))
	}
	printSuccess("Specification is feasible")
	printNewline()
	printNextStep("Solve", "plotsync solve "+input)
	return nil
}
