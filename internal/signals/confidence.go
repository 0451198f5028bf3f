package signals

import "github.com/mrhapile/BuriBuri-Trading/internal/config"

// regimeBonus orders regimes by favorability: CONTRACTING > STABLE > EXPANDING.
func regimeBonus(state VolatilityState, cfg config.Confidence) float64 {
	switch state {
	case VolContracting:
		return cfg.ContractBonus
	case VolExpanding:
		return cfg.ExpandBonus
	default:
		return cfg.StableBonus
	}
}

// SectorConfidence combines the volatility regime with the news score into a
// [0,100] confidence value. Always defined: callers normalize absent inputs
// to STABLE/50 before reaching this point. Monotonic non-decreasing in the
// news score for a fixed regime.
func SectorConfidence(state VolatilityState, newsScore float64, cfg config.Confidence) float64 {
	c := cfg.NewsWeight*newsScore + regimeBonus(state, cfg)
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// HighConfidence reports whether confidence clears the high-tier cutoff used
// by the posture rules.
func HighConfidence(confidence float64, cfg config.Confidence) bool {
	return confidence >= cfg.HighTierCutoff
}
