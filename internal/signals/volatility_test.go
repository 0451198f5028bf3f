package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
)

// rangeCandles builds candles whose closes stay flat so each true range
// equals the high-low span.
func rangeCandles(spans []float64) []market.Candle {
	ts := time.Date(2026, 8, 28, 13, 30, 0, 0, time.UTC)
	candles := make([]market.Candle, len(spans))
	for i, span := range spans {
		candles[i] = market.Candle{
			Timestamp: ts.Add(time.Duration(i) * 15 * time.Minute),
			Open:      100,
			High:      100 + span/2,
			Low:       100 - span/2,
			Close:     100,
			Volume:    1000,
		}
	}
	return candles
}

func spans(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestReadVolatility_ShortHistoryIsStable(t *testing.T) {
	cfg := config.Default().Volatility

	for n := 0; n < 15; n++ {
		reading := ReadVolatility(rangeCandles(spans(n, 2)), cfg)
		assert.False(t, reading.HasATR, "n=%d", n)
		assert.Equal(t, VolStable, reading.State, "n=%d", n)
	}
}

func TestComputeATR_SimpleMean(t *testing.T) {
	atr, ok := ComputeATR(rangeCandles(spans(15, 2)), 14)
	require.True(t, ok)
	assert.InDelta(t, 2.0, atr, 1e-9)
}

func TestReadVolatility_Contracting(t *testing.T) {
	cfg := config.Default().Volatility

	// 14 wide baseline ranges followed by 14 narrow recent ones.
	s := append(spans(15, 5), spans(14, 1)...)
	reading := ReadVolatility(rangeCandles(s), cfg)

	require.True(t, reading.HasATR)
	assert.Equal(t, VolContracting, reading.State)
	assert.InDelta(t, 1.0, reading.ATR, 1e-9)
}

func TestReadVolatility_Expanding(t *testing.T) {
	cfg := config.Default().Volatility

	s := append(spans(15, 1), spans(14, 5)...)
	reading := ReadVolatility(rangeCandles(s), cfg)

	require.True(t, reading.HasATR)
	assert.Equal(t, VolExpanding, reading.State)
}

func TestReadVolatility_SteadyRangesStayStable(t *testing.T) {
	cfg := config.Default().Volatility

	reading := ReadVolatility(rangeCandles(spans(40, 2)), cfg)
	require.True(t, reading.HasATR)
	assert.Equal(t, VolStable, reading.State)
}

func TestReadVolatility_SkipsMalformedCandles(t *testing.T) {
	cfg := config.Default().Volatility

	candles := rangeCandles(spans(20, 2))
	candles[5] = market.Candle{} // missing OHLC, skipped not fatal
	candles[11].High = 0

	reading := ReadVolatility(candles, cfg)
	require.True(t, reading.HasATR, "enough valid candles remain")
	assert.InDelta(t, 2.0, reading.ATR, 1e-9)
}
