package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
	"github.com/mrhapile/BuriBuri-Trading/internal/decision"
	"github.com/mrhapile/BuriBuri-Trading/internal/intel"
	"github.com/mrhapile/BuriBuri-Trading/internal/market"
	"github.com/mrhapile/BuriBuri-Trading/internal/observ"
	"github.com/mrhapile/BuriBuri-Trading/internal/risk"
	"github.com/mrhapile/BuriBuri-Trading/internal/signals"
)

// Inputs is one run's worth of already-fetched, already-validated data.
// The pipeline never mutates it; concurrent runs need independent copies.
type Inputs struct {
	Portfolio  market.Portfolio
	Positions  []market.Position
	Candles    []market.Candle
	Headlines  []string
	Heatmap    market.SectorHeatmap
	Candidates []market.Candidate

	// ContextOverrides replaces the derived risk context wholesale. An
	// incomplete override fails safe: guardrails block everything.
	ContextOverrides *risk.Context
}

// Memory is the optional cross-run handoff. The caller owns persistence and
// ordering; the pipeline only reads the incoming snapshot and emits the next
// one. No process-wide state exists.
type Memory struct {
	PreviousPosture decision.PostureKind `json:"previous_posture"`
	PreviousRisk    decision.RiskLevel   `json:"previous_risk"`
	Valid           bool                 `json:"valid"`
}

// Report is the advisory output, serialized as-is by the presentation
// layer. RunID and GeneratedAt are stamped by the caller and excluded from
// idempotence comparisons; everything else is a pure function of the inputs.
type Report struct {
	RunID       string `json:"run_id,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`

	PMSummary           string                     `json:"pm_summary"`
	MarketPosture       decision.Posture           `json:"market_posture"`
	Decisions           []decision.Record          `json:"decisions"`
	BlockedBySafety     []decision.Record          `json:"blocked_by_safety"`
	ConcentrationRisk   intel.ConcentrationWarning `json:"concentration_risk"`
	ReallocationTrigger bool                       `json:"reallocation_trigger"`
	OpportunityScan     intel.OpportunityScan      `json:"opportunity_scan"`
	PressureScore       float64                    `json:"pressure_score"`
	Signals             SignalSummary              `json:"signals"`

	NextMemory Memory `json:"-"`
}

// SignalSummary surfaces the stage-one signals for the presentation layer.
type SignalSummary struct {
	Volatility signals.VolatilityReading `json:"volatility"`
	News       signals.SentimentReading  `json:"news"`
	Confidence float64                   `json:"sector_confidence"`
}

type Pipeline struct {
	cfg config.Root
}

func New(cfg config.Root) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes the full decision pipeline: signals, position intelligence,
// decision synthesis, guardrails, execution sequencing. Strictly forward
// data flow, single-threaded, no I/O, no partial side effects; it returns a
// complete schema-valid report for any input.
func (p *Pipeline) Run(in Inputs, mem Memory) Report {
	observ.IncCounter("pipeline_runs_total", nil)

	// Stage 1: signals.
	vol := signals.ReadVolatility(in.Candles, p.cfg.Volatility)
	news := signals.ScoreHeadlines(in.Headlines, p.cfg.Sentiment)
	confidence := signals.SectorConfidence(vol.State, news.Score, p.cfg.Confidence)

	// Stage 2: position intelligence.
	positions := market.NormalizePositions(in.Positions)
	candidates := market.NormalizeCandidates(in.Candidates)
	scored, excluded := intel.AssessAll(positions, p.cfg.Vitals)
	concentration := intel.AssessConcentration(positions, in.Portfolio.TotalCapital, p.cfg.Concentration)
	lockin := intel.DetectLockIn(in.Portfolio, scored, in.Heatmap, p.cfg.LockIn)
	scan := intel.ScanOpportunities(scored, candidates, p.cfg.Opportunity)

	// Stage 3: decision synthesis.
	posture, proposed := decision.Orchestrate(decision.Inputs{
		Scored:        scored,
		Excluded:      excluded,
		Volatility:    vol,
		NewsScore:     news.Score,
		Confidence:    confidence,
		Concentration: concentration,
		Opportunity:   scan,
	}, p.cfg.Confidence)

	if mem.Valid && mem.PreviousPosture != "" && mem.PreviousPosture != posture.MarketPosture {
		posture.Reasons = append(posture.Reasons, fmt.Sprintf(
			"posture shifted from %s", mem.PreviousPosture))
	}

	// Stage 4: guardrails.
	ctx := in.ContextOverrides
	if ctx == nil {
		ctx = &risk.Context{
			Concentration:   &concentration,
			CashAvailable:   in.Portfolio.Cash,
			CashKnown:       true,
			MinimumReserve:  p.cfg.Guardrails.MinimumReserve,
			VolatilityState: vol.State,
		}
	}
	allowed, blocked := risk.Apply(proposed, ctx)

	// Stage 5: execution sequencing.
	sequenced := decision.Sequence(allowed)

	report := Report{
		MarketPosture:       posture,
		Decisions:           sequenced,
		BlockedBySafety:     blocked,
		ConcentrationRisk:   concentration,
		ReallocationTrigger: lockin.ReallocationAlert,
		OpportunityScan:     scan,
		PressureScore:       lockin.PressureScore,
		Signals: SignalSummary{
			Volatility: vol,
			News:       news,
			Confidence: confidence,
		},
		NextMemory: Memory{
			PreviousPosture: posture.MarketPosture,
			PreviousRisk:    posture.RiskLevel,
			Valid:           true,
		},
	}
	report.PMSummary = summarize(report)
	return report
}

// summarize builds the one-paragraph PM summary from the finished report.
// Deterministic: same report, same text.
func summarize(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Posture %s (risk %s, confidence %.0f). ",
		r.MarketPosture.MarketPosture, r.MarketPosture.RiskLevel, r.MarketPosture.Confidence)

	if len(r.Decisions) == 0 && len(r.BlockedBySafety) == 0 {
		b.WriteString("No actionable positions or candidates this run. ")
	} else {
		fmt.Fprintf(&b, "%d actions proposed", len(r.Decisions))
		if len(r.BlockedBySafety) > 0 {
			byGuard := map[string][]string{}
			for _, rec := range r.BlockedBySafety {
				byGuard[rec.BlockingGuard] = append(byGuard[rec.BlockingGuard], rec.Target)
			}
			guards := make([]string, 0, len(byGuard))
			for g := range byGuard {
				guards = append(guards, g)
			}
			sort.Strings(guards)
			parts := make([]string, 0, len(guards))
			for _, g := range guards {
				parts = append(parts, fmt.Sprintf("%s: %s", g, strings.Join(byGuard[g], ", ")))
			}
			fmt.Fprintf(&b, ", %d blocked by safety (%s)", len(r.BlockedBySafety), strings.Join(parts, "; "))
		}
		b.WriteString(". ")
	}

	if r.ConcentrationRisk.IsConcentrated {
		fmt.Fprintf(&b, "Concentration: %s at %.0f%% (%s). ",
			r.ConcentrationRisk.DominantSector, r.ConcentrationRisk.Exposure*100, r.ConcentrationRisk.Severity)
	}
	if r.ReallocationTrigger {
		fmt.Fprintf(&b, "Reallocation pressure %.1f, dead capital detected. ", r.PressureScore)
	}
	if r.OpportunityScan.BetterOpportunityExists {
		b.WriteString(r.OpportunityScan.Summary + ". ")
	}
	return strings.TrimSpace(b.String())
}
