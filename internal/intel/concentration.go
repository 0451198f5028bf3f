package intel

import (
	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
)

type Severity string

const (
	SeverityOK          Severity = "OK"
	SeverityApproaching Severity = "APPROACHING"
	SeveritySoftBreach  Severity = "SOFT_BREACH"
)

// ConcentrationWarning summarizes per-sector exposure against total capital.
type ConcentrationWarning struct {
	IsConcentrated bool               `json:"is_concentrated"`
	DominantSector string             `json:"dominant_sector"`
	Severity       Severity           `json:"severity"`
	Exposure       float64            `json:"exposure"` // dominant sector, fraction of capital
	Exposures      map[string]float64 `json:"exposures"`
}

// AssessConcentration groups allocated capital by sector. Positions with no
// sector are excluded from the map but do not error. Empty input yields an
// unconcentrated result with an empty map.
func AssessConcentration(positions []market.Position, totalCapital float64, cfg config.Concentration) ConcentrationWarning {
	warning := ConcentrationWarning{
		Severity:  SeverityOK,
		Exposures: map[string]float64{},
	}
	if len(positions) == 0 {
		return warning
	}

	bySector := map[string]float64{}
	allocated := 0.0
	for _, p := range positions {
		allocated += p.CapitalAllocated
		if p.Sector == "" {
			continue
		}
		bySector[p.Sector] += p.CapitalAllocated
	}

	base := totalCapital
	if base <= 0 {
		// Degraded portfolio data: fall back to the allocation sum so the
		// exposure map stays meaningful.
		base = allocated
	}
	if base <= 0 {
		return warning
	}

	for sector, capital := range bySector {
		exposure := capital / base
		warning.Exposures[sector] = exposure
		if exposure > warning.Exposure {
			warning.Exposure = exposure
			warning.DominantSector = sector
		}
		observ.SetGauge("sector_exposure", exposure, map[string]string{"sector": sector})
	}

	switch {
	case warning.Exposure > cfg.BreachPct:
		warning.Severity = SeveritySoftBreach
	case warning.Exposure >= cfg.ApproachingPct:
		warning.Severity = SeverityApproaching
	}
	warning.IsConcentrated = warning.Severity != SeverityOK
	return warning
}
