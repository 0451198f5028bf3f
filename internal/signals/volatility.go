package signals

import (
	"fmt"
	"math"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
)

type VolatilityState string

const (
	VolExpanding   VolatilityState = "EXPANDING"
	VolStable      VolatilityState = "STABLE"
	VolContracting VolatilityState = "CONTRACTING"
)

// VolatilityReading is the volatility signal's full output. HasATR is false
// when the candle history is too short for a numeric ATR, in which case the
// state defaults to STABLE.
type VolatilityReading struct {
	ATR    float64         `json:"atr"`
	HasATR bool            `json:"has_atr"`
	State  VolatilityState `json:"volatility_state"`
	Reason string          `json:"reason"`
}

// trueRanges computes TR per candle: max(H-L, |H-prevClose|, |L-prevClose|).
// Malformed candles are skipped with a logged note.
func trueRanges(candles []market.Candle) []float64 {
	trs := make([]float64, 0, len(candles))
	var prev market.Candle
	havePrev := false
	for i, c := range candles {
		if !market.ValidCandle(c) {
			observ.Warn("candle_skipped", map[string]any{"index": i})
			observ.IncCounter("malformed_candles_total", nil)
			continue
		}
		if havePrev {
			hl := c.High - c.Low
			hc := math.Abs(c.High - prev.Close)
			lc := math.Abs(c.Low - prev.Close)
			trs = append(trs, math.Max(hl, math.Max(hc, lc)))
		}
		prev = c
		havePrev = true
	}
	return trs
}

// ComputeATR returns the simple mean of the most recent period true ranges.
// At least period+1 usable candles are required for a numeric result.
func ComputeATR(candles []market.Candle, period int) (float64, bool) {
	if period <= 0 {
		period = 14
	}
	trs := trueRanges(candles)
	if len(trs) < period {
		return 0, false
	}
	recent := trs[len(trs)-period:]
	sum := 0.0
	for _, tr := range recent {
		sum += tr
	}
	return sum / float64(len(recent)), true
}

// ReadVolatility classifies the regime by comparing the current ATR against
// a trailing baseline taken from the earlier part of the true-range history.
// Without enough history for both windows the state is STABLE.
func ReadVolatility(candles []market.Candle, cfg config.Volatility) VolatilityReading {
	period := cfg.ATRPeriod
	if period <= 0 {
		period = 14
	}
	trs := trueRanges(candles)
	if len(trs) < period {
		return VolatilityReading{
			State:  VolStable,
			Reason: fmt.Sprintf("insufficient history: need %d candles", period+1),
		}
	}

	recent := trs[len(trs)-period:]
	sum := 0.0
	for _, tr := range recent {
		sum += tr
	}
	atr := sum / float64(len(recent))

	baselineWindow := trs[:len(trs)-period]
	if len(baselineWindow) == 0 {
		// Exactly one ATR window of history: nothing to trend against.
		return VolatilityReading{
			ATR:    atr,
			HasATR: true,
			State:  VolStable,
			Reason: "no trailing baseline, defaulting to stable",
		}
	}

	base := 0.0
	for _, tr := range baselineWindow {
		base += tr
	}
	baseline := base / float64(len(baselineWindow))
	if baseline <= 0 {
		return VolatilityReading{ATR: atr, HasATR: true, State: VolStable, Reason: "flat baseline"}
	}

	ratio := atr / baseline
	reading := VolatilityReading{ATR: atr, HasATR: true}
	switch {
	case ratio > cfg.ExpandRatio:
		reading.State = VolExpanding
		reading.Reason = fmt.Sprintf("ATR %.4f is %.2fx trailing baseline", atr, ratio)
	case ratio < cfg.ContractRatio:
		reading.State = VolContracting
		reading.Reason = fmt.Sprintf("ATR %.4f is %.2fx trailing baseline", atr, ratio)
	default:
		reading.State = VolStable
		reading.Reason = fmt.Sprintf("ATR %.4f within %.2f-%.2f of baseline", atr, cfg.ContractRatio, cfg.ExpandRatio)
	}
	observ.SetGauge("signal_atr", atr, nil)
	return reading
}
