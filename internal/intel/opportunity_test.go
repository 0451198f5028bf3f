package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
)

func TestScanOpportunities_NoCandidatesIsNoOp(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities([]ScoredPosition{
		scoredPos("AAA", "TECH", 1000, Weak, 45),
	}, nil, cfg)

	assert.False(t, scan.BetterOpportunityExists)
	assert.Equal(t, "N/A", scan.Confidence)
	assert.Equal(t, "AAA", scan.WeakestSymbol)
}

func TestScanOpportunities_GapAboveThreshold(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities(
		[]ScoredPosition{
			scoredPos("LAGGING", "ENERGY", 1000, Unhealthy, 35),
			scoredPos("STABLE", "TECH", 1000, Weak, 60),
			scoredPos("STAR", "TECH", 1000, Healthy, 92),
		},
		[]market.Candidate{
			{Symbol: "NEWTECH", Sector: "TECH", ProjectedEfficiency: 85},
			{Symbol: "DULL", Sector: "UTILITIES", ProjectedEfficiency: 40},
		}, cfg)

	assert.True(t, scan.BetterOpportunityExists)
	assert.Equal(t, "LAGGING", scan.WeakestSymbol)
	assert.Equal(t, "NEWTECH", scan.BestSymbol)
	assert.InDelta(t, 50.0, scan.EfficiencyGap, 1e-9)
	assert.Equal(t, "HIGH", scan.Confidence) // gap exceeds twice the threshold
	assert.Contains(t, scan.Summary, "swap LAGGING")
}

func TestScanOpportunities_ModerateGapIsMedium(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities(
		[]ScoredPosition{scoredPos("HELD", "TECH", 1000, Weak, 50)},
		[]market.Candidate{{Symbol: "NEXT", ProjectedEfficiency: 70}}, cfg)

	assert.True(t, scan.BetterOpportunityExists)
	assert.Equal(t, "MEDIUM", scan.Confidence)
}

func TestScanOpportunities_GapBelowThresholdIsHold(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities(
		[]ScoredPosition{scoredPos("HELD", "TECH", 1000, Weak, 60)},
		[]market.Candidate{{Symbol: "NEXT", ProjectedEfficiency: 70}}, cfg)

	assert.False(t, scan.BetterOpportunityExists)
	assert.Equal(t, "LOW", scan.Confidence)
	assert.Contains(t, scan.Summary, "Hold")
}

func TestScanOpportunities_EmptyPortfolioAnyCandidateWins(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities(nil, []market.Candidate{{Symbol: "ONLY", ProjectedEfficiency: 30}}, cfg)
	assert.True(t, scan.BetterOpportunityExists)
	assert.Equal(t, "HIGH", scan.Confidence)
	assert.Equal(t, "N/A", scan.WeakestSymbol)
}

func TestScanOpportunities_NothingAtAll(t *testing.T) {
	cfg := config.Default().Opportunity

	scan := ScanOpportunities(nil, nil, cfg)
	assert.False(t, scan.BetterOpportunityExists)
	assert.Equal(t, "N/A", scan.Confidence)
}
