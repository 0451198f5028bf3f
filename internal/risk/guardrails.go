package risk

import (
	"fmt"

	"github.com/mrhapile/BuriBuri-Trading/internal/decision"
	"github.com/mrhapile/BuriBuri-Trading/internal/intel"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
	"github.com/mrhapile/BuriBuri-Trading/internal/signals"
)

// Guard names recorded in BlockingGuard.
const (
	GuardSectorConcentration = "SECTOR_CONCENTRATION"
	GuardCashReserve         = "CASH_RESERVE"
	GuardVolatility          = "VOLATILITY_AGGRESSION"
	GuardMissingContext      = "MISSING_CONTEXT"
)

// Context is the risk snapshot the guardrails evaluate against. CashKnown
// distinguishes "cash is zero" from "cash was never supplied"; an incomplete
// context fails safe and blocks everything.
type Context struct {
	Concentration   *intel.ConcentrationWarning `json:"concentration"`
	CashAvailable   float64                     `json:"cash_available"`
	CashKnown       bool                        `json:"cash_known"`
	MinimumReserve  float64                     `json:"minimum_reserve"`
	VolatilityState signals.VolatilityState     `json:"volatility_state"`
}

// Complete reports whether every safety signal is present.
func (c *Context) Complete() bool {
	return c != nil && c.Concentration != nil && c.CashKnown && c.VolatilityState != ""
}

// increasesExposure: actions that add capital to a sector.
func increasesExposure(action string) bool {
	switch action {
	case decision.ActionAllocate, "SCALE_UP", "ADD_POSITION", "DOUBLE_DOWN":
		return true
	}
	return false
}

// requiresCapital: actions with a net outflow from cash.
func requiresCapital(action string) bool {
	switch action {
	case decision.ActionAllocate, "SCALE_UP", "ADD_POSITION", "DOUBLE_DOWN":
		return true
	}
	return false
}

// aggressive: allocation-type actions unsafe while volatility is expanding.
func aggressive(action string) bool {
	switch action {
	case decision.ActionAllocate, "AGGRESSIVE_BUY", "SCALE_UP", "DOUBLE_DOWN":
		return true
	}
	return false
}

// Apply is the final veto layer. The three guards run independently, never
// short-circuiting: every tripped guard appends a reason, and BlockingGuard
// records the first. A missing or partial context is maximally unsafe and
// blocks every action. This function never fails; worst case it blocks.
func Apply(proposed []decision.Record, ctx *Context) (allowed, blocked []decision.Record) {
	allowed = []decision.Record{}
	blocked = []decision.Record{}

	if !ctx.Complete() {
		for _, rec := range proposed {
			rec.Blocked = true
			rec.BlockingGuard = GuardMissingContext
			rec.Reasons = append(rec.Reasons, "safety check failed: risk context missing or incomplete")
			blocked = append(blocked, rec)
			observ.IncCounter("guardrail_blocks_total", map[string]string{"guard": GuardMissingContext})
		}
		return allowed, blocked
	}

	for _, rec := range proposed {
		var tripped []string

		if ctx.Concentration.Severity == intel.SeveritySoftBreach &&
			rec.Sector == ctx.Concentration.DominantSector &&
			increasesExposure(rec.Action) {
			tripped = append(tripped, GuardSectorConcentration)
			rec.Reasons = append(rec.Reasons, fmt.Sprintf(
				"%s would raise exposure to %s past the soft breach (%.0f%%)",
				rec.Action, ctx.Concentration.DominantSector, ctx.Concentration.Exposure*100))
		}

		if ctx.CashAvailable < ctx.MinimumReserve && requiresCapital(rec.Action) {
			tripped = append(tripped, GuardCashReserve)
			rec.Reasons = append(rec.Reasons, fmt.Sprintf(
				"cash %.0f below minimum reserve %.0f", ctx.CashAvailable, ctx.MinimumReserve))
		}

		if ctx.VolatilityState == signals.VolExpanding && aggressive(rec.Action) {
			tripped = append(tripped, GuardVolatility)
			rec.Reasons = append(rec.Reasons, "aggressive action blocked during expanding volatility")
		}

		if len(tripped) > 0 {
			rec.Blocked = true
			rec.BlockingGuard = tripped[0]
			blocked = append(blocked, rec)
			for _, g := range tripped {
				observ.IncCounter("guardrail_blocks_total", map[string]string{"guard": g})
			}
			continue
		}
		allowed = append(allowed, rec)
	}
	return allowed, blocked
}
