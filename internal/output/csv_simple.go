package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ScenarioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "TotalContributed", "TotalGrowth", "MaturityValue", "GrowthMultiple", "Years"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	summaries := summarizeAll(report)
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	years := make(map[string]int)
	for _, o := range report.Outcomes {
		if p, ok := o.PrimaryProjection(); ok {
			years[o.ScenarioName] = len(p.Breakdown)
		}
	}
	for _, s := range summaries {
		if !s.HasProjection {
			continue
		}
		row := []string{
			s.Name,
			string(s.Kind),
			s.Contributed.Round(0).String(),
			s.Growth.Round(0).String(),
			s.Maturity.Round(0).String(),
			s.Multiple.StringFixed(2),
			strconv.Itoa(years[s.Name]),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedFormatter writes the breakdown of every projection, prefixed by scenario and stream
type CSVDetailedFormatter struct{}

func (c CSVDetailedFormatter) Name() string { return "detailed-csv" }

func (c CSVDetailedFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Scenario", "Stream"}, BreakdownHeader...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range report.Outcomes {
		for _, np := range o.Projections() {
			rows := BreakdownTable(np.Projection)
			for _, r := range rows[1:] {
				if err := w.Write(append([]string{o.ScenarioName, np.Name}, r...)); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
