package calculation

import (
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// Stream names reported by the crypto projection besides the per-asset streams
const (
	StreamPortfolio = "portfolio"
	StreamDCA       = "dca"
)

// SpeculativeAssetProjector projects per-asset lump sums, a weighted allocation and a DCA stream
type SpeculativeAssetProjector struct {
	policy domain.CryptoPolicy
	growth *CompoundGrowthCalculator
	sip    *SIPProjector
}

// NewSpeculativeAssetProjector creates a projector for the given crypto policy
func NewSpeculativeAssetProjector(policy domain.CryptoPolicy, growth *CompoundGrowthCalculator, sip *SIPProjector) *SpeculativeAssetProjector {
	return &SpeculativeAssetProjector{policy: policy, growth: growth, sip: sip}
}

// Project returns one stream per configured asset, the allocation stream and, when a monthly
// investment is set, the DCA stream
func (sp *SpeculativeAssetProjector) Project(in domain.CryptoInput) (*domain.CryptoResult, error) {
	streams := domain.NewStreamSet()
	holdings := make([]domain.CryptoHolding, 0, len(sp.policy.Assets))
	slices := make([]domain.ProjectionResult, 0, len(sp.policy.Assets))

	for _, asset := range sp.policy.Assets {
		name := strings.ToLower(asset.Name)
		full, err := sp.growth.lumpSumProjection(in.InvestmentAmount, asset.ExpectedReturnPercent, in.Years, domain.FrequencyAnnually)
		if err != nil {
			return nil, err
		}
		streams.Add(name, full)

		slice, err := sp.growth.lumpSumProjection(in.InvestmentAmount.Mul(asset.AllocationWeight), asset.ExpectedReturnPercent, in.Years, domain.FrequencyAnnually)
		if err != nil {
			return nil, err
		}
		slices = append(slices, slice)

		holding := domain.CryptoHolding{
			Asset:                 name,
			AllocationWeight:      asset.AllocationWeight,
			ExpectedReturnPercent: asset.ExpectedReturnPercent,
			RiskScore:             asset.RiskScore,
		}
		if price, ok := in.Prices[name]; ok && price.IsPositive() {
			holding.Units = in.InvestmentAmount.DivRound(price, 8)
		}
		holdings = append(holdings, holding)
	}

	if len(slices) > 0 {
		streams.Add(StreamPortfolio, sumProjections(slices...))
	}

	if in.MonthlyInvestment.IsPositive() {
		dca, err := sp.sip.flatProjection(in.MonthlyInvestment, sp.policy.DCAAnnualRatePercent, in.Years)
		if err != nil {
			return nil, err
		}
		streams.Add(StreamDCA, dca)
	}

	return &domain.CryptoResult{
		Streams:            streams,
		Holdings:           holdings,
		PortfolioRiskScore: sp.policy.PortfolioRiskScore,
	}, nil
}
