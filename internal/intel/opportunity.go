package intel

import (
	"fmt"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
)

// OpportunityScan compares the portfolio's weakest link against the best
// external candidate.
type OpportunityScan struct {
	WeakestSymbol           string  `json:"weakest_held_symbol"`
	WeakestScore            float64 `json:"weakest_held_score"`
	BestSymbol              string  `json:"best_external_symbol"`
	BestSector              string  `json:"best_external_sector,omitempty"`
	BestScore               float64 `json:"best_external_score"`
	EfficiencyGap           float64 `json:"efficiency_gap"`
	BetterOpportunityExists bool    `json:"better_opportunity_exists"`
	Confidence              string  `json:"confidence"` // HIGH | MEDIUM | LOW | N/A
	Summary                 string  `json:"summary"`
}

// ScanOpportunities finds the minimum-vitals holding and the
// maximum-efficiency candidate, then checks whether the gap justifies a
// swap. No candidates is a no-op verdict, never an error.
func ScanOpportunities(scored []ScoredPosition, candidates []market.Candidate, cfg config.Opportunity) OpportunityScan {
	scan := OpportunityScan{
		WeakestSymbol: "N/A",
		BestSymbol:    "N/A",
		Confidence:    "N/A",
		Summary:       "No significant upgrade available.",
	}

	var weakest *ScoredPosition
	for i := range scored {
		if weakest == nil || scored[i].Vitals.Score < weakest.Vitals.Score {
			weakest = &scored[i]
		}
	}
	if weakest != nil {
		scan.WeakestSymbol = weakest.Position.Symbol
		scan.WeakestScore = weakest.Vitals.Score
	}

	var best *market.Candidate
	for i := range candidates {
		if best == nil || candidates[i].ProjectedEfficiency > best.ProjectedEfficiency {
			best = &candidates[i]
		}
	}
	if best != nil {
		scan.BestSymbol = best.Symbol
		scan.BestSector = best.Sector
		scan.BestScore = best.ProjectedEfficiency
	}

	switch {
	case weakest != nil && best != nil:
		scan.EfficiencyGap = scan.BestScore - scan.WeakestScore
		if scan.EfficiencyGap > cfg.MinGap {
			scan.BetterOpportunityExists = true
			scan.Confidence = "MEDIUM"
			if scan.EfficiencyGap > cfg.MinGap*2 {
				scan.Confidence = "HIGH"
			}
			scan.Summary = fmt.Sprintf(
				"Upgrade opportunity: swap %s (%.1f) for %s (%.1f), efficiency gain +%.1f",
				scan.WeakestSymbol, scan.WeakestScore, scan.BestSymbol, scan.BestScore, scan.EfficiencyGap)
		} else {
			scan.Confidence = "LOW"
			scan.Summary = fmt.Sprintf(
				"Hold: best external gap (+%.1f) does not exceed threshold (%.1f)",
				scan.EfficiencyGap, cfg.MinGap)
		}
	case weakest == nil && best != nil:
		// Empty portfolio: any candidate is an opportunity.
		scan.EfficiencyGap = scan.BestScore
		scan.BetterOpportunityExists = true
		scan.Confidence = "HIGH"
		scan.Summary = "Portfolio is empty; external opportunities available."
	}

	return scan
}
