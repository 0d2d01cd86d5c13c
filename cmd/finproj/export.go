package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input-file]",
		Short: "Export the year-by-year breakdown of one scenario as CSV",
		Long: `Export the period breakdown (Period, PrincipalToDate, InterestToDate, TotalValue,
PeriodGrowth) of one projection as CSV.

Examples:
  finproj export plans.yaml --scenario sip -o sip.csv
  finproj export plans.yaml --scenario abroad --stream blended
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioName, _ := cmd.Flags().GetString("scenario")
			stream, _ := cmd.Flags().GetString("stream")
			outputFile, _ := cmd.Flags().GetString("output")

			cfg, engine, err := loadScenarios(cmd, args[0])
			if err != nil {
				return err
			}
			if scenarioName == "" {
				scenarioName = firstProjectedScenario(cfg)
				if scenarioName == "" {
					return fmt.Errorf("%s has no scenario with a projection to export", args[0])
				}
			}

			outcome, err := engine.RunScenarioByName(context.Background(), cfg, scenarioName)
			if err != nil {
				return err
			}
			projection, err := selectProjection(outcome, stream)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outputFile, err)
				}
				defer f.Close()
				w = f
			}
			if err := output.WriteBreakdownCSV(w, projection.Projection); err != nil {
				return err
			}
			if outputFile != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d years of %s to %s\n", len(projection.Projection.Breakdown), scenarioName, outputFile)
			}
			return nil
		},
	}
	cmd.Flags().String("scenario", "", "Scenario to export (default: the first one with a projection)")
	cmd.Flags().String("stream", "", "Secondary projection to export, for example blended or home-market")
	cmd.Flags().StringP("output", "o", "", "Write the CSV to this file instead of stdout")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

// firstProjectedScenario returns the first scenario whose kind produces a projection
func firstProjectedScenario(cfg *domain.Configuration) string {
	for _, s := range cfg.Scenarios {
		if s.Kind != domain.KindInsurance {
			return s.Name
		}
	}
	return ""
}

// selectProjection picks the named stream of outcome, or its primary projection
func selectProjection(outcome *domain.CalculationOutcome, stream string) (domain.NamedProjection, error) {
	projections := outcome.Projections()
	if len(projections) == 0 {
		return domain.NamedProjection{}, fmt.Errorf("%s scenarios have no projection to export", outcome.Kind)
	}
	if stream == "" {
		return projections[0], nil
	}
	for _, p := range projections {
		if p.Name == stream {
			return p, nil
		}
	}
	return domain.NamedProjection{}, fmt.Errorf("scenario %q has no %q projection", outcome.ScenarioName, stream)
}
