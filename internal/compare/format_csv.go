package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Kind",
		"Years",
		"Total Contributed",
		"Total Growth",
		"Maturity Value",
		"Growth Multiple",
		"Shortfall",
		"Maturity Diff from Base",
		"Maturity % Change",
		"Contribution Diff from Base",
		"Shortfall Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		string(result.Kind),
		strconv.Itoa(result.Years),
		result.TotalContributed.StringFixed(0),
		result.TotalGrowth.StringFixed(0),
		result.MaturityValue.StringFixed(0),
		result.GrowthMultiple.StringFixed(2),
		result.Shortfall.StringFixed(0),
		result.MaturityDiffFromBase.StringFixed(0),
		result.MaturityPctFromBase.StringFixed(2),
		result.ContributionDiffFromBase.StringFixed(0),
		result.ShortfallDiffFromBase.StringFixed(0),
	}
}
