package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with per-year breakdowns
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "DETAILED FINANCIAL PROJECTION ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, o := range report.Outcomes {
		if o == nil {
			continue
		}
		s := summarize(o)
		fmt.Fprintf(&buf, "SCENARIO %d: %s (%s)\n", i+1, s.Name, s.Kind)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if s.HasProjection {
			fmt.Fprintf(&buf, "  Total Contributed:  %s\n", FormatINR(s.Contributed))
			fmt.Fprintf(&buf, "  Total Growth:       %s\n", FormatINR(s.Growth))
			fmt.Fprintf(&buf, "  Maturity Value:     %s\n", FormatINR(s.Maturity))
			fmt.Fprintf(&buf, "  Growth Multiple:    %sx\n", s.Multiple.StringFixed(2))
		}
		for _, h := range s.Highlights {
			fmt.Fprintf(&buf, "  • %s\n", h)
		}
		for _, np := range o.Projections() {
			fmt.Fprintln(&buf)
			writeBreakdown(&buf, np)
		}
		fmt.Fprintln(&buf)
	}

	if best, ok := bestByMaturity(summarizeAll(report)); ok {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "%s reaches the highest maturity value of %s.\n", best.Name, FormatINR(best.Maturity))
	}
	return buf.Bytes(), nil
}

func writeBreakdown(buf *bytes.Buffer, np domain.NamedProjection) {
	fmt.Fprintf(buf, "  YEAR-BY-YEAR (%s)\n", np.Name)
	fmt.Fprintf(buf, "  %-6s %18s %18s %18s %18s\n", "Year", "Principal", "Interest", "Total", "Growth")
	for _, r := range np.Projection.Breakdown {
		fmt.Fprintf(buf, "  %-6d %18s %18s %18s %18s\n", r.Period,
			FormatINR(r.PrincipalToDate), FormatINR(r.InterestToDate), FormatINR(r.TotalValue), FormatINR(r.PeriodGrowth))
	}
}
