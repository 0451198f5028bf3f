package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Volatility struct {
	ATRPeriod     int     `yaml:"atr_period"`     // candles per ATR window
	ExpandRatio   float64 `yaml:"expand_ratio"`   // ATR/baseline above this = EXPANDING
	ContractRatio float64 `yaml:"contract_ratio"` // ATR/baseline below this = CONTRACTING
}

type Sentiment struct {
	Baseline       float64            `yaml:"baseline"`
	KeywordWeight  float64            `yaml:"keyword_weight"`
	PositiveTerms  []string           `yaml:"positive_terms"`
	NegativeTerms  []string           `yaml:"negative_terms"`
	WeightOverride map[string]float64 `yaml:"weight_override"` // per-term absolute weight
}

type Confidence struct {
	NewsWeight     float64 `yaml:"news_weight"`
	ContractBonus  float64 `yaml:"contract_bonus"`
	StableBonus    float64 `yaml:"stable_bonus"`
	ExpandBonus    float64 `yaml:"expand_bonus"`
	HighTierCutoff float64 `yaml:"high_tier_cutoff"` // confidence >= cutoff counts as high tier
}

type Vitals struct {
	HealthyMin      float64 `yaml:"healthy_min"`
	WeakMin         float64 `yaml:"weak_min"`
	StagnationDays  int     `yaml:"stagnation_days"`
	StagnationBand  float64 `yaml:"stagnation_band"` // |return| below this counts as flat
	EfficiencyScale float64 `yaml:"efficiency_scale"`
}

type Concentration struct {
	ApproachingPct float64 `yaml:"approaching_pct"` // exposure fraction, e.g. 0.50
	BreachPct      float64 `yaml:"breach_pct"`      // exposure fraction, e.g. 0.60
}

type LockIn struct {
	ColdSectorMax float64 `yaml:"cold_sector_max"` // heatmap intensity below this = cold
	PressureAlert float64 `yaml:"pressure_alert"`  // pressure score above this trips alert
}

type Opportunity struct {
	MinGap float64 `yaml:"min_gap"` // efficiency points needed to justify a swap
}

type Guardrails struct {
	MinimumReserve float64 `yaml:"minimum_reserve"`
}

type Root struct {
	Volatility    Volatility    `yaml:"volatility"`
	Sentiment     Sentiment     `yaml:"sentiment"`
	Confidence    Confidence    `yaml:"confidence"`
	Vitals        Vitals        `yaml:"vitals"`
	Concentration Concentration `yaml:"concentration"`
	LockIn        LockIn        `yaml:"lock_in"`
	Opportunity   Opportunity   `yaml:"opportunity"`
	Guardrails    Guardrails    `yaml:"guardrails"`
}

// Default returns the policy constants the advisor ships with. These are
// configuration, not derived values; Load fills any field left at zero.
func Default() Root {
	return Root{
		Volatility: Volatility{
			ATRPeriod:     14,
			ExpandRatio:   1.2,
			ContractRatio: 0.8,
		},
		Sentiment: Sentiment{
			Baseline:      50,
			KeywordWeight: 7,
			// substring-matched, so "beat" also covers "beats"
			PositiveTerms: []string{
				"surge", "rally", "record", "beat", "upgrade",
				"growth", "strong", "breakthrough", "bullish", "gain",
			},
			NegativeTerms: []string{
				"plunge", "miss", "downgrade", "layoff",
				"lawsuit", "weak", "drop", "bearish", "recession", "fraud",
			},
		},
		Confidence: Confidence{
			NewsWeight:     0.6,
			ContractBonus:  25,
			StableBonus:    15,
			ExpandBonus:    0,
			HighTierCutoff: 60,
		},
		Vitals: Vitals{
			HealthyMin:      65,
			WeakMin:         40,
			StagnationDays:  20,
			StagnationBand:  0.01,
			EfficiencyScale: 10,
		},
		Concentration: Concentration{
			ApproachingPct: 0.50,
			BreachPct:      0.60,
		},
		LockIn: LockIn{
			ColdSectorMax: 40,
			PressureAlert: 20,
		},
		Opportunity: Opportunity{
			MinGap: 15,
		},
		Guardrails: Guardrails{
			MinimumReserve: 50000,
		},
	}
}

func Load(path string) (Root, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	applyDefaults(&c)
	return c, nil
}

// applyDefaults backfills zero values so a sparse config file still yields a
// complete policy.
func applyDefaults(c *Root) {
	d := Default()
	if c.Volatility.ATRPeriod == 0 {
		c.Volatility.ATRPeriod = d.Volatility.ATRPeriod
	}
	if c.Volatility.ExpandRatio == 0 {
		c.Volatility.ExpandRatio = d.Volatility.ExpandRatio
	}
	if c.Volatility.ContractRatio == 0 {
		c.Volatility.ContractRatio = d.Volatility.ContractRatio
	}
	if c.Sentiment.Baseline == 0 {
		c.Sentiment.Baseline = d.Sentiment.Baseline
	}
	if c.Sentiment.KeywordWeight == 0 {
		c.Sentiment.KeywordWeight = d.Sentiment.KeywordWeight
	}
	if len(c.Sentiment.PositiveTerms) == 0 {
		c.Sentiment.PositiveTerms = d.Sentiment.PositiveTerms
	}
	if len(c.Sentiment.NegativeTerms) == 0 {
		c.Sentiment.NegativeTerms = d.Sentiment.NegativeTerms
	}
	if c.Confidence.NewsWeight == 0 {
		c.Confidence.NewsWeight = d.Confidence.NewsWeight
	}
	if c.Confidence.ContractBonus == 0 {
		c.Confidence.ContractBonus = d.Confidence.ContractBonus
	}
	if c.Confidence.StableBonus == 0 {
		c.Confidence.StableBonus = d.Confidence.StableBonus
	}
	if c.Confidence.HighTierCutoff == 0 {
		c.Confidence.HighTierCutoff = d.Confidence.HighTierCutoff
	}
	if c.Vitals.HealthyMin == 0 {
		c.Vitals.HealthyMin = d.Vitals.HealthyMin
	}
	if c.Vitals.WeakMin == 0 {
		c.Vitals.WeakMin = d.Vitals.WeakMin
	}
	if c.Vitals.StagnationDays == 0 {
		c.Vitals.StagnationDays = d.Vitals.StagnationDays
	}
	if c.Vitals.StagnationBand == 0 {
		c.Vitals.StagnationBand = d.Vitals.StagnationBand
	}
	if c.Vitals.EfficiencyScale == 0 {
		c.Vitals.EfficiencyScale = d.Vitals.EfficiencyScale
	}
	if c.Concentration.ApproachingPct == 0 {
		c.Concentration.ApproachingPct = d.Concentration.ApproachingPct
	}
	if c.Concentration.BreachPct == 0 {
		c.Concentration.BreachPct = d.Concentration.BreachPct
	}
	if c.LockIn.ColdSectorMax == 0 {
		c.LockIn.ColdSectorMax = d.LockIn.ColdSectorMax
	}
	if c.LockIn.PressureAlert == 0 {
		c.LockIn.PressureAlert = d.LockIn.PressureAlert
	}
	if c.Opportunity.MinGap == 0 {
		c.Opportunity.MinGap = d.Opportunity.MinGap
	}
	if c.Guardrails.MinimumReserve == 0 {
		c.Guardrails.MinimumReserve = d.Guardrails.MinimumReserve
	}
}
