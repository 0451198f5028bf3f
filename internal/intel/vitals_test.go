package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
)

func TestAssessVitals_WinnerIsHealthy(t *testing.T) {
	cfg := config.Default().Vitals

	v, err := AssessVitals(market.Position{
		Symbol: "MSFT", Sector: "TECH",
		EntryPrice: 100, CurrentPrice: 110, ATR: 2, DaysHeld: 10, CapitalAllocated: 50000,
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, Healthy, v.Health)
	assert.Equal(t, "MAINTAIN", v.SuggestedAction)
	assert.LessOrEqual(t, v.Score, 100.0)
}

func TestAssessVitals_SmallLossIsWeak(t *testing.T) {
	cfg := config.Default().Vitals

	v, err := AssessVitals(market.Position{
		Symbol:     "XOM",
		EntryPrice: 100, CurrentPrice: 99.5, ATR: 2, DaysHeld: 10, CapitalAllocated: 10000,
	}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 47.5, v.Score, 0.1)
	assert.Equal(t, Weak, v.Health)
	assert.Equal(t, "REVIEW", v.SuggestedAction)
}

func TestAssessVitals_StagnationPenalty(t *testing.T) {
	cfg := config.Default().Vitals

	v, err := AssessVitals(market.Position{
		Symbol:     "T",
		EntryPrice: 100, CurrentPrice: 100.2, ATR: 1, DaysHeld: 30, CapitalAllocated: 10000,
	}, cfg)
	require.NoError(t, err)
	assert.Contains(t, v.Flags, FlagStagnant)
	assert.InDelta(t, 37.0, v.Score, 0.1)
	assert.Equal(t, Unhealthy, v.Health)
	assert.Equal(t, "REDUCE", v.SuggestedAction)
}

func TestAssessVitals_LossOnHighVolatilityFlagged(t *testing.T) {
	cfg := config.Default().Vitals

	v, err := AssessVitals(market.Position{
		Symbol:     "NVAX",
		EntryPrice: 100, CurrentPrice: 90, ATR: 5, DaysHeld: 5, CapitalAllocated: 10000,
	}, cfg)
	require.NoError(t, err)
	assert.Contains(t, v.Flags, FlagLossAccel)
	assert.Equal(t, Unhealthy, v.Health)
}

func TestAssessVitals_ScoreAlwaysInRange(t *testing.T) {
	cfg := config.Default().Vitals

	cases := []market.Position{
		{Symbol: "A", EntryPrice: 1, CurrentPrice: 10000, ATR: 0.0001, DaysHeld: 1, CapitalAllocated: 1},
		{Symbol: "B", EntryPrice: 10000, CurrentPrice: 1, ATR: 0.0001, DaysHeld: 400, CapitalAllocated: 1},
		{Symbol: "C", EntryPrice: 50, CurrentPrice: 0, ATR: 2, DaysHeld: 5, CapitalAllocated: 1000},
		{Symbol: "D", EntryPrice: 50, CurrentPrice: -3, ATR: 2, DaysHeld: 5, CapitalAllocated: 1000},
		{Symbol: "E", EntryPrice: 0.0001, CurrentPrice: 0.0002, ATR: 99, DaysHeld: 0, CapitalAllocated: 1},
	}
	for _, p := range cases {
		v, err := AssessVitals(p, cfg)
		require.NoError(t, err, p.Symbol)
		assert.GreaterOrEqual(t, v.Score, 0.0, p.Symbol)
		assert.LessOrEqual(t, v.Score, 100.0, p.Symbol)
	}
}

func TestAssessVitals_ZeroPriceFallsBackToEntry(t *testing.T) {
	cfg := config.Default().Vitals

	v, err := AssessVitals(market.Position{
		Symbol:     "C",
		EntryPrice: 50, CurrentPrice: 0, ATR: 2, DaysHeld: 5, CapitalAllocated: 1000,
	}, cfg)
	require.NoError(t, err)
	assert.Contains(t, v.Flags, FlagPriceFallback)
}

func TestAssessVitals_MissingEntryPriceIsAnError(t *testing.T) {
	cfg := config.Default().Vitals

	_, err := AssessVitals(market.Position{Symbol: "GHOST", CurrentPrice: 10, ATR: 1}, cfg)
	assert.ErrorIs(t, err, ErrNoEntryPrice)
}

func TestAssessAll_ExcludesOnlyTheBadPosition(t *testing.T) {
	cfg := config.Default().Vitals

	scored, excluded := AssessAll([]market.Position{
		{Symbol: "OK", EntryPrice: 100, CurrentPrice: 105, ATR: 2, CapitalAllocated: 1000},
		{Symbol: "BAD", CurrentPrice: 10, ATR: 1, CapitalAllocated: 1000},
	}, cfg)

	require.Len(t, scored, 1)
	assert.Equal(t, "OK", scored[0].Position.Symbol)
	require.Len(t, excluded, 1)
	assert.Equal(t, "BAD", excluded[0].Symbol)
	assert.Contains(t, excluded[0].Reason, "excluded from scoring")
}
