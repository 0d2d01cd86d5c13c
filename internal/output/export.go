package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// BreakdownHeader is the column contract of the tabular export
var BreakdownHeader = []string{"Period", "PrincipalToDate", "InterestToDate", "TotalValue", "PeriodGrowth"}

// BreakdownTable converts a projection's breakdown into rows of unformatted integers,
// header first
func BreakdownTable(result domain.ProjectionResult) [][]string {
	rows := make([][]string, 0, len(result.Breakdown)+1)
	rows = append(rows, append([]string(nil), BreakdownHeader...))
	for _, r := range result.Breakdown {
		rows = append(rows, []string{
			strconv.Itoa(r.Period),
			r.PrincipalToDate.Round(0).String(),
			r.InterestToDate.Round(0).String(),
			r.TotalValue.Round(0).String(),
			r.PeriodGrowth.Round(0).String(),
		})
	}
	return rows
}

// WriteBreakdownCSV writes the breakdown export of result to w
func WriteBreakdownCSV(w io.Writer, result domain.ProjectionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(BreakdownTable(result)); err != nil {
		return fmt.Errorf("failed to write breakdown csv: %w", err)
	}
	return nil
}
