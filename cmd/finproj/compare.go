package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a scenario against built-in what-if templates",
		Long: `Compare a base scenario against what-if variants built from templates.

Examples:
  finproj compare plans.yaml --base sip --with rate_plus_1,double_contribution
  finproj compare plans.yaml --base retirement --format csv
  finproj compare --list-templates  # Show all available templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates(domain.DefaultPolicy())))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("input file is required (or use --list-templates)")
			}
			baseScenarioName, _ := cmd.Flags().GetString("base")
			templatesStr, _ := cmd.Flags().GetString("with")
			outputFormat, _ := cmd.Flags().GetString("format")
			if baseScenarioName == "" {
				return fmt.Errorf("--base is required")
			}

			cfg, engine, err := loadScenarios(cmd, args[0])
			if err != nil {
				return err
			}

			templates := transform.ParseTemplateList(templatesStr)
			if len(templates) == 0 {
				base, ok := cfg.FindScenario(baseScenarioName)
				if !ok {
					return fmt.Errorf("base scenario %s not found in configuration", baseScenarioName)
				}
				templates = transform.CreateBuiltInTemplates(cfg.Policy).ApplicableTo(base)
				if len(templates) == 0 {
					return fmt.Errorf("no templates apply to %s scenarios", base.Kind)
				}
			}

			compSet, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
				BaseScenarioName: baseScenarioName,
				Templates:        templates,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			compSet.ConfigPath = args[0]

			var out string
			switch outputFormat {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unknown format %q (available: table, csv, json)", outputFormat)
			}
			if err != nil {
				return fmt.Errorf("failed to format comparison: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name to compare against (required)")
	cmd.Flags().String("with", "", "Comma-separated list of templates (default: every template that applies)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}
