package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
)

func scoredPos(symbol, sector string, capital float64, health Health, score float64) ScoredPosition {
	return ScoredPosition{
		Position: market.Position{Symbol: symbol, Sector: sector, CapitalAllocated: capital},
		Vitals:   Vitals{Score: score, Health: health},
	}
}

func TestDetectLockIn_NoDeadPositions(t *testing.T) {
	cfg := config.Default().LockIn
	heatmap := market.SectorHeatmap{"TECH": 80, "ENERGY": 55}

	report := DetectLockIn(market.Portfolio{TotalCapital: 1000000}, []ScoredPosition{
		scoredPos("AAA", "TECH", 200000, Healthy, 80),
		scoredPos("BBB", "ENERGY", 150000, Weak, 50), // weak, but sector not cold
	}, heatmap, cfg)

	assert.Empty(t, report.DeadPositions)
	assert.False(t, report.ReallocationAlert)
	assert.Equal(t, 0.0, report.PressureScore)
}

func TestDetectLockIn_WeakInColdSectorIsDead(t *testing.T) {
	cfg := config.Default().LockIn
	heatmap := market.SectorHeatmap{"BIOTECH": 25, "TECH": 80}

	report := DetectLockIn(market.Portfolio{TotalCapital: 1000000}, []ScoredPosition{
		scoredPos("NVAX", "BIOTECH", 120000, Weak, 45),
		scoredPos("CRSP", "BIOTECH", 180000, Unhealthy, 30),
		scoredPos("MSFT", "TECH", 400000, Unhealthy, 35), // unhealthy, hot sector: not dead
	}, heatmap, cfg)

	require.Len(t, report.DeadPositions, 2)
	assert.InDelta(t, 300000, report.DeadCapital, 1e-9)
	assert.InDelta(t, 30.0, report.PressureScore, 1e-9)
	assert.True(t, report.ReallocationAlert)
}

func TestDetectLockIn_BelowAlertThreshold(t *testing.T) {
	cfg := config.Default().LockIn
	heatmap := market.SectorHeatmap{"BIOTECH": 20}

	report := DetectLockIn(market.Portfolio{TotalCapital: 1000000}, []ScoredPosition{
		scoredPos("NVAX", "BIOTECH", 100000, Weak, 45),
	}, heatmap, cfg)

	assert.InDelta(t, 10.0, report.PressureScore, 1e-9)
	assert.False(t, report.ReallocationAlert)
}

func TestDetectLockIn_SectorMissingFromHeatmapNeverCold(t *testing.T) {
	cfg := config.Default().LockIn

	report := DetectLockIn(market.Portfolio{TotalCapital: 500000}, []ScoredPosition{
		scoredPos("ZZZ", "FRONTIER", 250000, Unhealthy, 20),
	}, market.SectorHeatmap{}, cfg)

	assert.Empty(t, report.DeadPositions)
	assert.False(t, report.ReallocationAlert)
}
