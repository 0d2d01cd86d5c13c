package output

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// outcomeSummary is the flattened view every formatter works from
type outcomeSummary struct {
	Name          string
	Kind          domain.CalculatorKind
	HasProjection bool
	Contributed   decimal.Decimal
	Growth        decimal.Decimal
	Maturity      decimal.Decimal
	Multiple      decimal.Decimal
	Highlights    []string
}

func summarize(o *domain.CalculationOutcome) outcomeSummary {
	s := outcomeSummary{Name: o.ScenarioName, Kind: o.Kind, Highlights: Highlights(o)}
	if p, ok := o.PrimaryProjection(); ok {
		s.HasProjection = true
		s.Contributed = p.TotalContributed
		s.Growth = p.TotalGrowth
		s.Maturity = p.MaturityValue
		s.Multiple = p.GrowthMultiple()
	}
	return s
}

func summarizeAll(report *domain.ScenarioReport) []outcomeSummary {
	out := make([]outcomeSummary, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		if o == nil {
			continue
		}
		out = append(out, summarize(o))
	}
	return out
}

// bestByMaturity returns the projected scenario with the highest maturity value
func bestByMaturity(summaries []outcomeSummary) (outcomeSummary, bool) {
	var best outcomeSummary
	found := false
	for _, s := range summaries {
		if !s.HasProjection {
			continue
		}
		if !found || s.Maturity.GreaterThan(best.Maturity) {
			best = s
			found = true
		}
	}
	return best, found
}

// Highlights lists the kind-specific headline lines of an outcome
func Highlights(o *domain.CalculationOutcome) []string {
	var lines []string
	switch {
	case o.CompoundInterest != nil:
		lines = append(lines, "Effective annual rate: "+FormatPercentage(o.CompoundInterest.EffectiveAnnualRate))
	case o.SIP != nil:
		if !o.SIP.StepUpPercent.IsZero() {
			lines = append(lines, "Annual step-up: "+FormatPercentage(o.SIP.StepUpPercent))
		}
	case o.Retirement != nil:
		s := o.Retirement.Shortfall
		lines = append(lines,
			fmt.Sprintf("Years to retirement: %d", o.Retirement.YearsToRetirement),
			"Required corpus: "+FormatINR(s.RequiredCorpus),
			"Projected corpus: "+FormatINR(s.ProjectedCorpus),
			"Shortfall: "+FormatINR(s.Shortfall),
		)
		if s.RequiredPeriodicContribution.IsPositive() {
			lines = append(lines, "Additional monthly SIP needed: "+FormatINR(s.RequiredPeriodicContribution))
		}
	case o.Insurance != nil:
		for _, c := range o.Insurance.Coverages {
			lines = append(lines, fmt.Sprintf("%s cover %s at %s/month (ratio %s)",
				c.Kind, FormatINR(c.RecommendedCoverage), FormatINR(c.EstimatedPeriodicPremium), FormatPercentage(c.SupportingRatio)))
		}
		lines = append(lines, "Total monthly premium: "+FormatINR(o.Insurance.TotalPremium()))
	case o.GovernmentScheme != nil:
		g := o.GovernmentScheme
		lines = append(lines,
			fmt.Sprintf("%s at %s", g.Scheme, FormatPercentage(g.RatePercent)),
			"Annual deposit: "+FormatINR(g.EmployeeContribution),
			"Tax benefit (80C): "+FormatINR(g.TaxBenefit),
		)
		if g.EmployerContribution.IsPositive() {
			lines = append(lines, "Employer contribution: "+FormatINR(g.EmployerContribution))
		}
		if g.AnnuityValue.IsPositive() {
			lines = append(lines, "Annuitised corpus: "+FormatINR(g.AnnuityValue))
		}
	case o.International != nil:
		i := o.International
		if band := i.Projection.RiskBand; band != nil {
			lines = append(lines, fmt.Sprintf("Currency risk band: %s to %s", FormatINR(band.Worst), FormatINR(band.Best)))
		}
		lines = append(lines,
			"Base return: "+FormatPercentage(i.BaseReturnPercent),
			"Risk-adjusted return: "+FormatPercentage(i.RiskAdjustedReturnPercent),
			"Home market: "+FormatINR(i.HomeMarket.MaturityValue),
			"Blended: "+FormatINR(i.Blended.MaturityValue),
		)
	case o.ESG != nil:
		e := o.ESG
		lines = append(lines,
			"Performance gap vs conventional: "+FormatPercentage(e.PerformanceGapPercent),
			"Sustainability premium: "+FormatPercentage(e.SustainabilityPremiumPercent),
			fmt.Sprintf("Carbon reduction: %s tonnes (%s trees)", e.Impact.CarbonReductionTonnes.StringFixed(2), e.Impact.TreesEquivalent.StringFixed(2)),
		)
		for _, name := range e.Streams.Order[1:] {
			p := e.Streams.Streams[name]
			lines = append(lines, fmt.Sprintf("%s: %s", name, FormatINR(p.MaturityValue)))
		}
	case o.Crypto != nil:
		c := o.Crypto
		for _, name := range c.Streams.Order {
			lines = append(lines, fmt.Sprintf("%s: %s", name, FormatINR(c.Streams.Streams[name].MaturityValue)))
		}
		for _, h := range c.Holdings {
			if h.Units.IsPositive() {
				lines = append(lines, fmt.Sprintf("%s units: %s (risk %d)", h.Asset, h.Units.String(), h.RiskScore))
			}
		}
		lines = append(lines, fmt.Sprintf("Portfolio risk score: %d", c.PortfolioRiskScore))
	}
	return lines
}
