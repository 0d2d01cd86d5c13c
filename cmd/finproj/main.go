package main

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/config"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finproj",
		Short: "Financial projection calculator CLI",
		Long: `Deterministic personal-finance projections: compound interest, SIP, retirement
corpus, insurance cover, government savings schemes, international, ESG and crypto
allocations. Scenarios are read from YAML or TOML files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		calculateCmd(),
		validateCmd(),
		exportCmd(),
		compareCmd(),
		breakEvenCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finproj %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadScenarios parses a scenario file and builds an engine from its policy
func loadScenarios(cmd *cobra.Command, path string) (*domain.Configuration, *calculation.CalculationEngine, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewCalculationEngineWithPolicy(cfg.Policy)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return cfg, engine, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)", outputFormat,
					strings.Join(append(output.AvailableFormatterNames(), output.AvailableFormatAliases()...), ", "))
			}

			cfg, engine, err := loadScenarios(cmd, args[0])
			if err != nil {
				return err
			}

			outcomes, err := engine.RunScenarios(context.Background(), cfg)
			if err != nil {
				return err
			}

			report := &domain.ScenarioReport{
				Outcomes:    outcomes,
				Assumptions: output.AssumptionsFor(cfg.Policy),
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if saveDir, _ := cmd.Flags().GetString("save-dir"); saveDir != "" {
				filename, err := output.WriteFormatted(saveDir, f, report)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", filename)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, csv, detailed-csv, json, html)")
	cmd.Flags().String("save-dir", "", "Also save the report to a timestamped file in this directory")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
