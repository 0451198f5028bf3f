package intel

import (
	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
)

// DeadPosition is capital stuck in a struggling position inside a cold
// sector: the holding is not working and its sector offers no lift.
type DeadPosition struct {
	Symbol  string  `json:"symbol"`
	Sector  string  `json:"sector"`
	Capital float64 `json:"capital"`
	Score   float64 `json:"vitals_score"`
}

type LockInReport struct {
	DeadPositions     []DeadPosition `json:"dead_positions"`
	DeadCapital       float64        `json:"dead_capital"`
	PressureScore     float64        `json:"pressure_score"` // [0,100]
	ReallocationAlert bool           `json:"reallocation_alert"`
}

// DetectLockIn flags dead capital: WEAK/UNHEALTHY vitals in a sector the
// heatmap rates cold. Pressure scales the dead fraction of total capital to
// [0,100]; the alert trips past the configured threshold.
func DetectLockIn(portfolio market.Portfolio, scored []ScoredPosition, heatmap market.SectorHeatmap, cfg config.LockIn) LockInReport {
	report := LockInReport{}
	total := portfolio.TotalCapital
	if total <= 0 {
		for _, sp := range scored {
			total += sp.Position.CapitalAllocated
		}
	}

	for _, sp := range scored {
		if sp.Vitals.Health == Healthy {
			continue
		}
		if !heatmap.IsCold(sp.Position.Sector, cfg.ColdSectorMax) {
			continue
		}
		report.DeadPositions = append(report.DeadPositions, DeadPosition{
			Symbol:  sp.Position.Symbol,
			Sector:  sp.Position.Sector,
			Capital: sp.Position.CapitalAllocated,
			Score:   sp.Vitals.Score,
		})
		report.DeadCapital += sp.Position.CapitalAllocated
	}

	if total > 0 && report.DeadCapital > 0 {
		report.PressureScore = 100 * report.DeadCapital / total
		if report.PressureScore > 100 {
			report.PressureScore = 100
		}
	}
	report.ReallocationAlert = report.PressureScore > cfg.PressureAlert
	observ.SetGauge("reallocation_pressure", report.PressureScore, nil)
	return report
}
