package market

import "github.com/mrhapile/BuriBuri-Trading/internal/observ"

// Sentinels substituted for absent optional fields so downstream math never
// divides by zero. Entry price has no sentinel: without it PnL is undefined
// and the position is excluded from scoring instead.
const (
	CapitalSentinel = 1.0
	ATRSentinel     = 0.0001
)

// NormalizePositions applies the fallback table to every position and
// returns a fresh slice; the input is never mutated. Each substitution is
// logged at warning level and counted.
func NormalizePositions(positions []Position) []Position {
	out := make([]Position, len(positions))
	for i, p := range positions {
		if p.CapitalAllocated <= 0 {
			observ.Warn("position_fallback", map[string]any{
				"symbol": p.Symbol, "field": "capital_allocated", "substituted": CapitalSentinel,
			})
			observ.IncCounter("fallback_substitutions_total", map[string]string{"field": "capital_allocated"})
			p.CapitalAllocated = CapitalSentinel
		}
		if p.ATR <= 0 {
			observ.Warn("position_fallback", map[string]any{
				"symbol": p.Symbol, "field": "atr", "substituted": ATRSentinel,
			})
			observ.IncCounter("fallback_substitutions_total", map[string]string{"field": "atr"})
			p.ATR = ATRSentinel
		}
		out[i] = p
	}
	return out
}

// NormalizeCandidates clamps projected efficiency into [0,100].
func NormalizeCandidates(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	for i, c := range candidates {
		if c.ProjectedEfficiency < 0 {
			c.ProjectedEfficiency = 0
		}
		if c.ProjectedEfficiency > 100 {
			c.ProjectedEfficiency = 100
		}
		out[i] = c
	}
	return out
}

// ValidCandle reports whether a candle carries usable OHLC fields. Malformed
// candles are skipped by the volatility signal, not fatal.
func ValidCandle(c Candle) bool {
	return c.Open > 0 && c.High > 0 && c.Low > 0 && c.Close > 0 && c.High >= c.Low
}
