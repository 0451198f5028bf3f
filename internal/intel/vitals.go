package intel

import (
	"errors"
	"fmt"
	"math"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
)

type Health string

const (
	Healthy   Health = "HEALTHY"
	Weak      Health = "WEAK"
	Unhealthy Health = "UNHEALTHY"
)

// Per-position flags describing the specific triggers behind a score.
const (
	FlagStagnant        = "STAGNANT"
	FlagLossAccel       = "LOSS_ACCELERATING"
	FlagPriceFallback   = "PRICE_FALLBACK"
	FlagCapitalFallback = "CAPITAL_FALLBACK"
)

// ErrNoEntryPrice marks the one unusable-required-data case: without an
// entry price PnL is undefined, so the position is excluded from scoring
// rather than silently defaulted.
var ErrNoEntryPrice = errors.New("entry price missing, pnl undefined")

// Vitals is the health assessment for one position. Never mutated after
// creation.
type Vitals struct {
	Score           float64  `json:"vitals_score"` // [0,100]
	Health          Health   `json:"health"`
	SuggestedAction string   `json:"suggested_action"`
	Flags           []string `json:"flags,omitempty"`
}

// ScoredPosition pairs a position with its vitals for the downstream stages.
type ScoredPosition struct {
	Position market.Position `json:"position"`
	Vitals   Vitals          `json:"vitals"`
}

// volatility proxy floor keeps the risk adjustment bounded for near-zero ATR
const proxyFloor = 0.005

// high proxy marks a position whose losses ride elevated volatility
const proxyHigh = 0.04

// AssessVitals scores a single position: price return adjusted by a
// volatility proxy, penalized for stagnation past the holding threshold.
// The score is clamped to [0,100] for any numeric input; only a missing
// entry price is surfaced as an error.
func AssessVitals(p market.Position, cfg config.Vitals) (Vitals, error) {
	if p.EntryPrice <= 0 {
		observ.Warn("position_excluded", map[string]any{"symbol": p.Symbol, "reason": "no_entry_price"})
		observ.IncCounter("positions_excluded_total", nil)
		return Vitals{}, ErrNoEntryPrice
	}

	var flags []string
	current := p.CurrentPrice
	if current <= 0 {
		// Zero/negative marks: score off the entry instead of failing.
		current = p.EntryPrice
		flags = append(flags, FlagPriceFallback)
		observ.Warn("position_fallback", map[string]any{"symbol": p.Symbol, "field": "current_price"})
	}

	ret := (current - p.EntryPrice) / p.EntryPrice
	proxy := p.ATR / current
	if proxy < proxyFloor {
		proxy = proxyFloor
	}

	// Risk-adjusted efficiency, centered on 50.
	score := 50 + (ret/proxy)*cfg.EfficiencyScale

	if p.DaysHeld > cfg.StagnationDays && math.Abs(ret) < cfg.StagnationBand {
		score -= 15
		flags = append(flags, FlagStagnant)
	}
	if ret < 0 && proxy > proxyHigh {
		score -= 10
		flags = append(flags, FlagLossAccel)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	health := classifyHealth(score, cfg)
	return Vitals{
		Score:           score,
		Health:          health,
		SuggestedAction: suggestedAction(health),
		Flags:           flags,
	}, nil
}

func classifyHealth(score float64, cfg config.Vitals) Health {
	switch {
	case score >= cfg.HealthyMin:
		return Healthy
	case score >= cfg.WeakMin:
		return Weak
	default:
		return Unhealthy
	}
}

// suggestedAction is the deterministic health-to-action mapping.
func suggestedAction(h Health) string {
	switch h {
	case Unhealthy:
		return "REDUCE"
	case Weak:
		return "REVIEW"
	default:
		return "MAINTAIN"
	}
}

// ExcludedPosition records a position dropped from scoring with the reason.
type ExcludedPosition struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// AssessAll scores every position, splitting out the ones that cannot be
// scored. A single bad position never aborts the run.
func AssessAll(positions []market.Position, cfg config.Vitals) ([]ScoredPosition, []ExcludedPosition) {
	scored := make([]ScoredPosition, 0, len(positions))
	var excluded []ExcludedPosition
	for _, p := range positions {
		v, err := AssessVitals(p, cfg)
		if err != nil {
			excluded = append(excluded, ExcludedPosition{
				Symbol: p.Symbol,
				Reason: fmt.Sprintf("excluded from scoring: %v", err),
			})
			continue
		}
		scored = append(scored, ScoredPosition{Position: p, Vitals: v})
	}
	return scored, excluded
}
