package scenes

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
)

// metricCards builds the headline cards of an outcome. When base is set, each card
// shows its change against base.
func metricCards(outcome, base *domain.CalculationOutcome) []*components.MetricCard {
	if outcome == nil {
		return nil
	}

	if outcome.Insurance != nil {
		cards := []*components.MetricCard{
			components.NewMoneyCard("Total Monthly Premium", outcome.Insurance.TotalPremium()),
		}
		for _, c := range outcome.Insurance.Coverages {
			cards = append(cards, components.NewMoneyCard(fmt.Sprintf("%s cover", c.Kind), c.RecommendedCoverage).
				WithDescription(components.FormatMonthly(c.EstimatedPeriodicPremium)))
		}
		return cards
	}

	p, ok := outcome.PrimaryProjection()
	if !ok {
		return nil
	}
	var bp domain.ProjectionResult
	if base != nil {
		bp, _ = base.PrimaryProjection()
	}

	maturity := components.NewMoneyCard("Maturity Value", p.MaturityValue).
		WithDescription(fmt.Sprintf("%sx money multiple", p.GrowthMultiple().StringFixed(2)))
	contributed := components.NewMoneyCard("Total Contributed", p.TotalContributed)
	growth := components.NewMoneyCard("Total Growth", p.TotalGrowth)
	if base != nil {
		maturity.WithDelta(p.MaturityValue.Sub(bp.MaturityValue), true)
		contributed.WithDelta(p.TotalContributed.Sub(bp.TotalContributed), false)
		growth.WithDelta(p.TotalGrowth.Sub(bp.TotalGrowth), true)
	}
	cards := []*components.MetricCard{maturity, contributed, growth}

	if r := outcome.Retirement; r != nil {
		shortfall := components.NewMoneyCard("Shortfall", r.Shortfall.Shortfall)
		if base != nil && base.Retirement != nil {
			shortfall.WithDelta(r.Shortfall.Shortfall.Sub(base.Retirement.Shortfall.Shortfall), false)
		}
		if r.Shortfall.RequiredPeriodicContribution.IsPositive() {
			shortfall.WithDescription("+" + components.FormatMonthly(r.Shortfall.RequiredPeriodicContribution) + " SIP closes it")
		}
		cards = append(cards, shortfall)
	}

	return cards
}

// fundedBar returns the retirement corpus progress bar, or nil for other kinds
func fundedBar(outcome *domain.CalculationOutcome) *components.ProgressBar {
	if outcome == nil || outcome.Retirement == nil {
		return nil
	}
	s := outcome.Retirement.Shortfall
	return components.NewProgressBar(s.ProjectedCorpus, s.RequiredCorpus).WithLabel("Retirement corpus funded")
}

// growthChart plots up to four projections of the outcome year by year
func growthChart(outcome *domain.CalculationOutcome, width int) *components.ASCIIChart {
	projections := outcome.Projections()
	if len(projections) == 0 {
		return nil
	}

	chartWidth := 70
	if width > 0 && width-8 < chartWidth {
		chartWidth = max(30, width-8)
	}
	chart := components.NewASCIIChart("Year-by-year value").WithSize(chartWidth, 10)

	if len(projections) == 1 {
		chart.AddProjection("Value", projections[0].Projection)
		chart.AddContributions("Contributed", projections[0].Projection)
		return chart
	}
	for i, np := range projections {
		if i == 4 {
			break
		}
		chart.AddProjection(np.Name, np.Projection)
	}
	return chart
}
