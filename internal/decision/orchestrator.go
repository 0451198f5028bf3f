package decision

import (
	"fmt"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/intel"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
	"github.com/mrhapile/BuriBuri-Trading/internal/signals"
)

// Inputs carries every upstream signal the orchestrator composes. All fields
// are pre-computed; the orchestrator performs no signal math of its own.
type Inputs struct {
	Scored        []intel.ScoredPosition
	Excluded      []intel.ExcludedPosition
	Volatility    signals.VolatilityReading
	NewsScore     float64
	Confidence    float64
	Concentration intel.ConcentrationWarning
	Opportunity   intel.OpportunityScan
}

// DecidePosture runs the priority table; the first matching rule wins.
// Internal portfolio health dominates all external signals.
func DecidePosture(in Inputs, cfg config.Confidence) Posture {
	healthy, unhealthy := 0, 0
	for _, sp := range in.Scored {
		switch sp.Vitals.Health {
		case intel.Healthy:
			healthy++
		case intel.Unhealthy:
			unhealthy++
		}
	}

	p := Posture{Confidence: in.Confidence}

	if unhealthy > healthy {
		p.MarketPosture = PostureRiskOff
		p.Reasons = append(p.Reasons, fmt.Sprintf(
			"%d unhealthy positions outnumber %d healthy; internal health overrides market signals",
			unhealthy, healthy))
	} else {
		high := signals.HighConfidence(in.Confidence, cfg)
		tier := "low"
		if high {
			tier = "high"
		}
		switch {
		case in.Volatility.State == signals.VolExpanding && !high:
			p.MarketPosture = PostureDefensive
		case in.Volatility.State == signals.VolContracting && high:
			p.MarketPosture = PostureAggressive
		case in.Volatility.State == signals.VolStable && high:
			p.MarketPosture = PostureOpportunity
		default:
			p.MarketPosture = PostureNeutral
		}
		p.Reasons = append(p.Reasons, fmt.Sprintf(
			"volatility %s with %s confidence (%.0f)", in.Volatility.State, tier, in.Confidence))
	}

	p.RiskLevel = riskFor(p.MarketPosture)
	if in.Concentration.Severity == intel.SeveritySoftBreach && p.RiskLevel == RiskLow {
		p.RiskLevel = RiskMedium
		p.Reasons = append(p.Reasons, fmt.Sprintf(
			"risk floor raised: %s exposure at %.0f%% is a soft breach",
			in.Concentration.DominantSector, in.Concentration.Exposure*100))
	}
	observ.Log("posture_decided", map[string]any{
		"posture": string(p.MarketPosture), "risk": string(p.RiskLevel),
	})
	return p
}

func riskFor(kind PostureKind) RiskLevel {
	switch kind {
	case PostureRiskOff, PostureDefensive:
		return RiskHigh
	case PostureOpportunity, PostureAggressive:
		return RiskLow
	default:
		return RiskMedium
	}
}

// Orchestrate produces the posture plus one record per position, and at
// most one candidate record when the opportunity scan signals a superior
// alternative and a weak holding exists to free capital from. The report is
// always complete: empty inputs yield an empty decision list with an
// explanatory posture reason, never a failure.
func Orchestrate(in Inputs, cfg config.Confidence) (Posture, []Record) {
	posture := DecidePosture(in, cfg)

	records := make([]Record, 0, len(in.Scored)+len(in.Excluded)+1)
	hasWeakHolding := false
	for _, sp := range in.Scored {
		if sp.Vitals.Health != intel.Healthy {
			hasWeakHolding = true
		}
		rec := Record{
			Type:    RecordPosition,
			Target:  sp.Position.Symbol,
			Sector:  sp.Position.Sector,
			Action:  sp.Vitals.SuggestedAction,
			Score:   sp.Vitals.Score,
			Capital: sp.Position.CapitalAllocated,
			Reasons: []string{fmt.Sprintf(
				"vitals %.1f classified %s", sp.Vitals.Score, sp.Vitals.Health)},
		}
		for _, flag := range sp.Vitals.Flags {
			rec.Reasons = append(rec.Reasons, "flag: "+flag)
		}
		records = append(records, rec)
	}

	for _, ex := range in.Excluded {
		records = append(records, Record{
			Type:    RecordPosition,
			Target:  ex.Symbol,
			Action:  ActionExclude,
			Reasons: []string{ex.Reason},
		})
	}

	if in.Opportunity.BetterOpportunityExists && hasWeakHolding {
		records = append(records, Record{
			Type:   RecordCandidate,
			Target: in.Opportunity.BestSymbol,
			Sector: in.Opportunity.BestSector,
			Action: ActionAllocate,
			Score:  in.Opportunity.BestScore,
			Reasons: []string{
				in.Opportunity.Summary,
				fmt.Sprintf("capital can be freed from %s (vitals %.1f)",
					in.Opportunity.WeakestSymbol, in.Opportunity.WeakestScore),
			},
		})
	}

	if len(records) == 0 {
		posture.Reasons = append(posture.Reasons, "no positions or actionable candidates in this run")
	}
	return posture, records
}
