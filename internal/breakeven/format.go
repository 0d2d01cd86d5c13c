package breakeven

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Optimization metadata
	if result.Request.BaseScenario != nil {
		sb.WriteString(fmt.Sprintf("Scenario:            %s (%s)\n", result.Request.BaseScenario.Name, result.Request.BaseScenario.Kind))
	}
	sb.WriteString(fmt.Sprintf("Optimization Target: %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Optimization Goal:   %s\n", result.Request.Goal))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	// Optimal parameters found
	sb.WriteString("OPTIMAL PARAMETERS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if result.OptimalRatePercent != nil {
		sb.WriteString(fmt.Sprintf("Expected Return:      %s%%\n", result.OptimalRatePercent.StringFixed(2)))
	}
	if result.OptimalContributionFactor != nil {
		sb.WriteString(fmt.Sprintf("Contribution Factor:  x%s\n", result.OptimalContributionFactor.StringFixed(3)))
	}
	if result.RequiredContribution != nil {
		sb.WriteString(fmt.Sprintf("Required Contribution: %s\n", output.FormatINR(*result.RequiredContribution)))
	}
	if result.OptimalYears != nil {
		sb.WriteString(fmt.Sprintf("Horizon:              %d years\n", *result.OptimalYears))
	}
	sb.WriteString("\n")

	// Results at optimal parameters
	sb.WriteString("PROJECTED RESULTS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Maturity Value:       %s\n", output.FormatINR(result.MaturityValue)))
	if result.Request.Goal == GoalCloseShortfall {
		sb.WriteString(fmt.Sprintf("Remaining Shortfall:  %s\n", output.FormatINR(result.Shortfall)))
	}
	sb.WriteString("\n")

	sb.WriteString("COMPARISON TO BASE SCENARIO\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Maturity Value:  %s\n", output.FormatINR(result.BaseMaturityValue)))
	sb.WriteString(fmt.Sprintf("Maturity Change:      %s%s\n",
		tf.deltaSymbol(result.MaturityDiffFromBase), output.FormatINR(result.MaturityDiffFromBase)))
	if result.Request.Goal == GoalCloseShortfall {
		sb.WriteString(fmt.Sprintf("Base Shortfall:       %s\n", output.FormatINR(result.BaseShortfall)))
	}
	sb.WriteString("\n")

	// Goal-specific information
	if result.Request.Goal == GoalReachTarget && result.Request.Constraints.TargetValue != nil {
		target := *result.Request.Constraints.TargetValue
		sb.WriteString("TARGET MATURITY\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Target Value:     %s\n", output.FormatINR(target)))
		sb.WriteString(fmt.Sprintf("Achieved Value:   %s\n", output.FormatINR(result.MaturityValue)))
		diff := result.MaturityValue.Sub(target)
		sb.WriteString(fmt.Sprintf("Difference:       %s%s\n", tf.deltaSymbol(diff), output.FormatINR(diff)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMultiDimensional formats results from multiple optimizations
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("MULTI-DIMENSIONAL OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	// Summary table of all results
	sb.WriteString("SUMMARY OF ALL OPTIMIZATIONS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %20s %18s %18s\n", "Optimization", "Answer", "Maturity", "Shortfall"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		sb.WriteString(fmt.Sprintf("%-20s %20s %18s %18s\n",
			tf.truncate(string(res.Request.Target), 20),
			tf.answer(&res),
			tf.formatShort(res.MaturityValue),
			tf.formatShort(res.Shortfall)))
	}
	sb.WriteString("\n")

	if len(result.Failures) > 0 {
		sb.WriteString("NOT REACHABLE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		targets := make([]string, 0, len(result.Failures))
		for target := range result.Failures {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			sb.WriteString(fmt.Sprintf("%-20s %s\n", target, result.Failures[target]))
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-dimensional results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) answer(r *OptimizationResult) string {
	switch {
	case r.OptimalRatePercent != nil:
		return r.OptimalRatePercent.StringFixed(2) + "%"
	case r.OptimalContributionFactor != nil:
		return "x" + r.OptimalContributionFactor.StringFixed(3)
	case r.OptimalYears != nil:
		return fmt.Sprintf("%d years", *r.OptimalYears)
	}
	return "-"
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	return output.FormatLakhs(d)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
