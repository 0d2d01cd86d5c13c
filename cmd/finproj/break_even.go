package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/breakeven"
)

func breakEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break-even [input-file]",
		Short: "Solve for the return, contribution or horizon that reaches a goal",
		Long: `Find the smallest change to one lever of a scenario that reaches a goal.

Goals:
  reach_target     maturity value at least --target-value
  close_shortfall  retirement corpus fully funded (default for retirement scenarios)

Examples:
  finproj break-even plans.yaml --scenario sip --target contribution --target-value 2500000
  finproj break-even plans.yaml --scenario retirement --target all
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioName, _ := cmd.Flags().GetString("scenario")
			targetStr, _ := cmd.Flags().GetString("target")
			goalStr, _ := cmd.Flags().GetString("goal")
			targetValueStr, _ := cmd.Flags().GetString("target-value")
			outputFormat, _ := cmd.Flags().GetString("format")

			if scenarioName == "" {
				return fmt.Errorf("--scenario is required")
			}
			target := breakeven.OptimizationTarget(targetStr)
			switch target {
			case breakeven.OptimizeReturnRate, breakeven.OptimizeContribution, breakeven.OptimizeHorizon, breakeven.OptimizeAll:
			default:
				return fmt.Errorf("unknown target %q (available: return_rate, contribution, horizon, all)", targetStr)
			}
			if outputFormat != "table" && outputFormat != "json" {
				return fmt.Errorf("unknown format %q (available: table, json)", outputFormat)
			}

			cfg, engine, err := loadScenarios(cmd, args[0])
			if err != nil {
				return err
			}
			scenario, ok := cfg.FindScenario(scenarioName)
			if !ok {
				return fmt.Errorf("scenario %s not found in configuration", scenarioName)
			}

			constraints := breakeven.DefaultConstraints()
			if targetValueStr != "" {
				v, err := decimal.NewFromString(targetValueStr)
				if err != nil {
					return fmt.Errorf("invalid --target-value %q: %w", targetValueStr, err)
				}
				constraints = constraints.WithTarget(v)
			}

			goal := breakeven.DefaultGoal(scenario.Kind)
			if goalStr != "" {
				goal = breakeven.OptimizationGoal(goalStr)
			} else if targetValueStr != "" {
				goal = breakeven.GoalReachTarget
			}

			solver := breakeven.NewDefaultSolver(engine)
			jf := &breakeven.JSONFormatter{Pretty: true}
			var out string

			if target == breakeven.OptimizeAll {
				result, err := solver.OptimizeMultiDimensional(context.Background(), scenario, constraints, goal)
				if err != nil {
					return fmt.Errorf("break-even analysis failed: %w", err)
				}
				if outputFormat == "json" {
					if out, err = jf.FormatMultiDimensional(result); err != nil {
						return err
					}
				} else {
					out = (&breakeven.TableFormatter{}).FormatMultiDimensional(result)
				}
			} else {
				result, err := solver.Optimize(context.Background(), breakeven.OptimizationRequest{
					BaseScenario: scenario,
					Target:       target,
					Goal:         goal,
					Constraints:  constraints,
				})
				if err != nil {
					return fmt.Errorf("break-even analysis failed: %w", err)
				}
				if outputFormat == "json" {
					if out, err = jf.Format(result); err != nil {
						return err
					}
				} else {
					out = (&breakeven.TableFormatter{}).Format(result)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("scenario", "", "Scenario to solve for (required)")
	cmd.Flags().String("target", string(breakeven.OptimizeAll), "Lever to solve for (return_rate, contribution, horizon, all)")
	cmd.Flags().String("goal", "", "Goal to reach (reach_target, close_shortfall)")
	cmd.Flags().String("target-value", "", "Maturity value for the reach_target goal")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}
