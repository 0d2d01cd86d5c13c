package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// ConsoleFormatter prints a compact one-line-per-scenario summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer
	summaries := summarizeAll(report)

	fmt.Fprintln(&buf, "FINANCIAL PROJECTION SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	for _, s := range summaries {
		if !s.HasProjection {
			fmt.Fprintf(&buf, "%-24s %-18s %d recommendation(s)\n", s.Name, s.Kind, len(s.Highlights))
			continue
		}
		fmt.Fprintf(&buf, "%-24s %-18s maturity %s (%sx)\n", s.Name, s.Kind, FormatINR(s.Maturity), s.Multiple.StringFixed(2))
	}

	if best, ok := bestByMaturity(summaries); ok {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest maturity: %s (%s)\n", best.Name, FormatLakhs(best.Maturity))
	}
	return buf.Bytes(), nil
}
