package output

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions of the default policy
var DefaultAssumptions = AssumptionsFor(domain.DefaultPolicy())

// AssumptionsFor describes the policy constants that shape every projection
func AssumptionsFor(p domain.Policy) []string {
	out := []string{
		"Money is computed in floating point and rounded to whole rupees at the output boundary",
		"SIP contributions are made at the start of each month (annuity due)",
		"Scheme deposits are made at the start of each year",
		fmt.Sprintf("Required retirement corpus: %sx inflated annual expenses", p.Retirement.RequiredCorpusMultiplier.String()),
		fmt.Sprintf("PPF %s%%, EPF %s%%, NPS %s%%, SSY %s%% (section 80C cap %s)",
			p.Schemes.PPF.RatePercent, p.Schemes.EPF.RatePercent, p.Schemes.NPS.RatePercent, p.Schemes.SSY.RatePercent,
			FormatINR(p.Schemes.SectionCap)),
		fmt.Sprintf("Home market benchmark return: %s%%", p.International.HomeMarketReturnPercent),
		fmt.Sprintf("Crypto DCA return: %s%% annually", p.Crypto.DCAAnnualRatePercent),
	}
	for _, a := range p.Crypto.Assets {
		out = append(out, fmt.Sprintf("%s: %s%% expected return, %s allocation weight", a.Name, a.ExpectedReturnPercent, a.AllocationWeight))
	}
	return out
}

func reportAssumptions(report *domain.ScenarioReport) []string {
	if len(report.Assumptions) > 0 {
		return report.Assumptions
	}
	return DefaultAssumptions
}
